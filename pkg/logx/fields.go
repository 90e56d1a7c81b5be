package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDatabase        = "database"
	FieldDeletedRows     = "deleted-rows"
	FieldDriver          = "driver"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldRows            = "rows"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
