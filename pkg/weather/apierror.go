package weather

import "github.com/tidwall/gjson"

// APIError is the error envelope weatherapi.com sends with 4xx responses.
type APIError struct {
	Code    int64
	Message string
}

// ParseAPIError reads {"error":{"code":...,"message":...}} from body.
func ParseAPIError(body string) (APIError, bool) {
	if !gjson.Valid(body) {
		return APIError{}, false
	}
	envelope := gjson.Get(body, "error")
	if !envelope.IsObject() {
		return APIError{}, false
	}
	return APIError{
		Code:    envelope.Get("code").Int(),
		Message: envelope.Get("message").String(),
	}, true
}
