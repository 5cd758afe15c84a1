// Package common contains shared constants and sentinel errors used across
// ledgerline components.
package common

// AuthHeaderName is the HTTP header carrying the bearer access token on
// outbound requests.
const AuthHeaderName = "Authorization"

// TenantHeaderName is the HTTP header carrying the active tenant id on
// tenant-scoped requests.
const TenantHeaderName = "X-Tenant-ID"

// BearerPrefix is prepended to the access token in the auth header.
const BearerPrefix = "Bearer "
