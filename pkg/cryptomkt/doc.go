// Package cryptomkt implements a client for the CryptoMarket v1 REST API.
//
// Public endpoints (markets, ticker, book, trades) need no credentials. Private
// endpoints (balance and the orders service) are signed with the client's API
// key pair and fail with *core.MissingCredentialError before any network call
// when either half of the pair is missing.
//
// Example usage:
//
//	client, err := cryptomkt.New(core.DefaultConfig())
//	book, err := client.Book(ctx, "ETHCLP", core.OrderTypeBuy, cryptomkt.WithLimit(50))
//	orders, err := client.Orders().Active(ctx, "ETHCLP")
package cryptomkt
