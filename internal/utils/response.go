package utils

import "pay-dashboard-api/internal/constant"

// Response is the envelope of every dashboard answer (Korean and English text).
type Response struct {
	Code    int         `json:"code"`
	Msg     string      `json:"msg"`
	MsgEN   string      `json:"msg_en,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func Success(data interface{}) Response {
	return Response{
		Code:  constant.CodeSuccess,
		Msg:   "성공",
		MsgEN: "Success",
		Data:  data,
	}
}

// Error builds a response from a code, taking the text from constant.ErrorMessages.
func Error(code int) Response {
	if info, exists := constant.GetErrorInfo(code); exists {
		return Response{
			Code:  code,
			Msg:   info.KO,
			MsgEN: info.EN,
		}
	}
	return Response{
		Code:  code,
		Msg:   "알 수 없는 오류",
		MsgEN: "Unknown error",
	}
}

func ErrorWithData(code int, data interface{}) Response {
	resp := Error(code)
	resp.Data = data
	return resp
}

// WithTrace returns a copy of r carrying traceID.
func (r Response) WithTrace(traceID string) Response {
	r.TraceID = traceID
	return r
}
