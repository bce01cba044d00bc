package constant

// ErrorInfo carries the Korean and English text of a code.
type ErrorInfo struct {
	KO string `json:"ko"`
	EN string `json:"en"`
}

// ErrorMessages maps every code to its text.
var ErrorMessages = map[int]ErrorInfo{
	CodeSuccess:            {"성공", "Success"},
	CodeSystemError:        {"시스템 오류", "System error"},
	CodeInternalError:      {"내부 오류", "Internal error"},
	CodeServiceUnavailable: {"서비스를 사용할 수 없습니다", "Service unavailable"},
	CodeTimeout:            {"요청 시간이 초과되었습니다", "Request timeout"},

	CodeInvalidParams:     {"잘못된 요청 파라미터", "Invalid parameters"},
	CodeMissingParams:     {"필수 파라미터 누락", "Missing parameters"},
	CodeParamsFormatError: {"파라미터 형식 오류", "Parameter format error"},

	CodeMerchantNotFound: {"가맹점을 찾을 수 없습니다", "Merchant not found"},

	CodeUpstreamError:       {"결제 API 호출 실패", "Upstream request failed"},
	CodeUpstreamTimeout:     {"결제 API 응답 시간 초과", "Upstream timeout"},
	CodeUpstreamDecodeError: {"결제 API 응답 형식 오류", "Upstream response malformed"},
}
