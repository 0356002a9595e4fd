// Package iyzisub provides a Go client SDK for the iyzico subscription
// payments API: products, pricing plans, hosted checkout forms,
// subscriptions, customers, and card-BIN lookups.
//
// Every request carries an IYZWSv2 HMAC-SHA256 signature computed from the
// credential pair, the request path and the serialized body. Transient
// failures are retried with exponential backoff, and API failures surface
// as typed errors that classify themselves (category, severity,
// retryability).
//
// Basic usage:
//
//	client, err := iyzisub.New("your-api-key", "your-secret-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	product, err := client.Products.Create(ctx, &iyzisub.CreateProductRequest{
//	    Name: "Starter",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Created:", product.ReferenceCode)
//
// Against the sandbox environment:
//
//	client, err := iyzisub.New("", "",
//	    iyzisub.WithSandbox(),
//	    iyzisub.WithSandboxCredentials("sandbox-api-key", "sandbox-secret-key"),
//	)
package iyzisub
