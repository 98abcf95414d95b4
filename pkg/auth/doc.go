// Package auth implements CryptoMarket request authentication.
//
// Private endpoints carry three headers: the API key, an HMAC-SHA384 signature
// and the timestamp that was signed. The signed payload is
//
//	timestamp + "/" + version + "/" + endpoint + canonicalBody
//
// where canonicalBody is empty for GET requests and, for POST requests, the
// form values concatenated in ascending key order.
package auth
