package gateway

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pay-dashboard-api/internal/dto"
	"pay-dashboard-api/internal/gateway/health"
	"pay-dashboard-api/internal/logger"
	"pay-dashboard-api/internal/utils"
)

// Upstream paths. The pay-type path carries the backend's own spelling.
const (
	PathMerchantList      = "/merchants/list"
	PathMerchantDetails   = "/merchants/details"
	PathPaymentList       = "/payments/list"
	PathMerchantStatusAll = "/common/mcht-status/all"
	PathPaymentStatusAll  = "/common/payment-status/all"
	PathPaymentTypeAll    = "/common/paymemt-type/all"
)

// Options configures a Client. Zero values get usable defaults.
type Options struct {
	BaseURL         string
	Timeout         time.Duration
	Location        *time.Location
	ReversePayments bool
	HTTPClient      *http.Client
	Health          *health.Tracker
	Logger          *logrus.Logger
}

// Client talks to the payments REST API. Every call is a full-collection GET with no
// retry and no caching.
type Client struct {
	baseURL         string
	http            *http.Client
	loc             *time.Location
	reversePayments bool
	health          *health.Tracker
	log             *logrus.Logger
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	tracker := opts.Health
	if tracker == nil {
		tracker = health.NewTracker(nil, 0)
	}
	return &Client{
		baseURL:         opts.BaseURL,
		http:            httpClient,
		loc:             loc,
		reversePayments: opts.ReversePayments,
		health:          tracker,
		log:             opts.Logger,
	}
}

// Location is the zone offset-less timestamps are read in.
func (c *Client) Location() *time.Location {
	return c.loc
}

// fetchApi GETs endpoint, decodes the envelope's data as T and converts it to R.
// Exactly one health sample and one fetch log line are written per call.
func fetchApi[T, R any](ctx context.Context, c *Client, endpoint string, convert func(T) (R, error)) (R, error) {
	var zero R
	start := time.Now()

	body, err := utils.HttpGetJson(ctx, c.http, c.baseURL+endpoint)
	if err != nil {
		fe := &FetchError{Kind: NetworkError, Endpoint: endpoint, Err: err}
		var se *utils.StatusError
		if errors.As(err, &se) {
			fe.StatusCode = se.StatusCode
		}
		c.record(endpoint, start, 0, fe)
		return zero, fe
	}

	resp, err := dto.UnmarshalGeneric[T](body)
	if err != nil {
		fe := &FetchError{Kind: DecodeError, Endpoint: endpoint, Err: err}
		c.record(endpoint, start, 0, fe)
		return zero, fe
	}

	out, err := convert(resp.Data)
	if err != nil {
		fe := &FetchError{Kind: DecodeError, Endpoint: endpoint, Err: err}
		c.record(endpoint, start, 0, fe)
		return zero, fe
	}

	c.record(endpoint, start, recordCount(out), nil)
	return out, nil
}

// record keys health by path, so every merchant code shares one details entry.
func (c *Client) record(endpoint string, start time.Time, records int, fe *FetchError) {
	path, _, _ := strings.Cut(endpoint, "?")
	c.health.Update(path, fe == nil)
	entry := logger.FetchLog{
		Endpoint: endpoint,
		Records:  records,
		Latency:  time.Since(start),
	}
	if fe != nil {
		entry.StatusCode = fe.StatusCode
		entry.Err = fe
	}
	logger.WriteFetchLog(c.log, entry)
}

func recordCount(v any) int {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		return rv.Len()
	}
	return 1
}
