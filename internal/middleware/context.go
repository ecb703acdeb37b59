package middleware

// ContextKeyRequestID stores the request identifier for traceability.
const ContextKeyRequestID = "request_id"
