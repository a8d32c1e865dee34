// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"turnos/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterBusinessInput defines the data required to register a business for
// an already authenticated user.
type RegisterBusinessInput struct {
	OwnerID        uuid.UUID
	Name           string
	Description    string
	Address        entity.Address
	Phone          string
	WhatsappNumber string
	Email          string
}

// RegisterCompleteInput carries the combined payload of the unified
// registration: a new user account plus their first business, created in one
// request.
type RegisterCompleteInput struct {
	UserName  string
	UserEmail string
	Password  string
	UserPhone string

	BusinessName   string
	Description    string
	Address        entity.Address
	BusinessPhone  string
	WhatsappNumber string
	BusinessEmail  string
}

// --- Output DTOs ---

// RegisterBusinessOutput returns the newly created business.
type RegisterBusinessOutput struct {
	Business *entity.Business
}

// RegisterCompleteOutput returns the identifiers of the created pair. No
// session is issued: the user must verify their email and then log in.
type RegisterCompleteOutput struct {
	UserID                uuid.UUID
	BusinessID            uuid.UUID
	EmailVerificationSent bool
}

// RegistrationUsecase defines the registration flows. RegisterComplete is
// the compensating flow: the identity account and the business live in
// different stores, so a failure after account creation deletes the account
// instead of relying on a shared transaction.
type RegistrationUsecase interface {
	RegisterBusiness(ctx context.Context, input *RegisterBusinessInput) (*RegisterBusinessOutput, error)
	RegisterComplete(ctx context.Context, input *RegisterCompleteInput) (*RegisterCompleteOutput, error)
}
