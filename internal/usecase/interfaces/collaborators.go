package interfaces

import "context"

//go:generate mockgen -source=collaborators.go -destination=mocks/collaborators.go -package=mocks

// INotifier is the fire-and-forget user feedback sink (the toast channel).
// Implementations must not block or return errors.
type INotifier interface {
	Success(message string)
	Failure(message string)
}

// IPaymentGateway abstracts the payment provider used to capture a service
// order's total on completion. Wired only when the provider is configured;
// a nil gateway disables the capture step.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, reference, description string, amount float64) (providerPaymentID string, providerStatus string, err error)
}
