// Package demo is a small HTTP service exercising the validators.
//
// Routes:
//
//	GET  /healthz                  liveness
//	GET  /readyz                   readiness, builds the signup form
//	GET  /api/validators           validator keys, card providers, sanitizer steps
//	POST /api/validate/{validator} {"value": ..., "options": {...}} against one validator
//	POST /api/payments             struct tag validation via tagrules
//	POST /api/signup               schema-driven form; DataStar signals, JSON or urlencoded
//
// Configuration comes from FORMVALID_* environment variables (see Config).
package demo
