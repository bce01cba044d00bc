package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pay-dashboard-api/internal/constant"
)

func TestStringOrNumber(t *testing.T) {
	var v struct {
		A StringOrNumber `json:"a"`
		B StringOrNumber `json:"b"`
		C StringOrNumber `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":200,"b":"OK","c":null}`), &v))
	assert.Equal(t, "200", v.A.String())
	assert.Equal(t, "OK", v.B.String())
	assert.Equal(t, "", v.C.String())
}

func TestHttpGetJson(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(strings.Repeat("x", 2000)))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	body, err := HttpGetJson(context.Background(), srv.Client(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	_, err = HttpGetJson(context.Background(), srv.Client(), srv.URL+"/fail")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Len(t, se.Body, maxErrorBody)
}

func TestResponses(t *testing.T) {
	ok := Success(map[string]int{"n": 1}).WithTrace("t-1")
	assert.Equal(t, constant.CodeSuccess, ok.Code)
	assert.Equal(t, "t-1", ok.TraceID)

	e := Error(constant.CodeMerchantNotFound)
	assert.Equal(t, "Merchant not found", e.MsgEN)
	assert.NotEmpty(t, e.Msg)

	unknown := Error(987654)
	assert.Equal(t, "Unknown error", unknown.MsgEN)

	withData := ErrorWithData(constant.CodeInvalidParams, []string{"x"})
	assert.Equal(t, []string{"x"}, withData.Data)
}

func TestValidators(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	type query struct {
		Day  string `form:"day" binding:"omitempty,ymd"`
		Kind string `form:"kind" binding:"omitempty,oneof=a b"`
	}
	bind := func(raw string) error {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+raw, nil)
		var q query
		return c.ShouldBindQuery(&q)
	}

	assert.NoError(t, bind("day=2024-02-29&kind=a"))
	assert.NoError(t, bind(""))

	err := bind("day=2023-02-29&kind=c")
	require.Error(t, err)
	fields := FieldErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "Day", fields[0]["field"])
	assert.Equal(t, "must be a date in YYYY-MM-DD form", fields[0]["error"])
	assert.Equal(t, "must be one of [a b]", fields[1]["error"])

	assert.Nil(t, FieldErrors(errors.New("plain")))
}

func TestGetClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	assert.Equal(t, "10.0.0.1", GetClientIP(c))
}
