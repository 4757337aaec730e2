package session

import "service-motorizado/internal/domain"

type courierDirectory interface {
	Get(id string) (domain.Courier, error)
	Put(c domain.Courier) error
	AddCredential(c domain.Credential) error
	CredentialByEmail(email string) (domain.Credential, bool)
	Update(id string, mutation func(*domain.Courier)) (domain.Courier, error)
}
