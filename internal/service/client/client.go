package client

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Client struct {
	repository Repository
}

func New(repository Repository) *Client {
	return &Client{
		repository: repository,
	}
}

func (s *Client) CreateClient(ctx context.Context, clientModify entities.ClientModify) (int64, error) {
	if clientModify.NationalID == nil ||
		clientModify.FirstName == nil ||
		clientModify.LastName == nil ||
		clientModify.Phone == nil ||
		clientModify.Address == nil ||
		clientModify.Zone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidNationalID(*clientModify.NationalID) {
		return 0, ErrInvalidNationalID
	}
	if !isValidName(*clientModify.FirstName) || !isValidName(*clientModify.LastName) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*clientModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !clientModify.Zone.IsValid() {
		return 0, ErrInvalidZone
	}

	id, err := s.repository.Create(ctx, clientModify)
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}

	return id, nil
}

func (s *Client) UpdateClient(ctx context.Context, clientModify entities.ClientModify) (*entities.Client, error) {
	if clientModify.ID == nil || *clientModify.ID <= 0 {
		return nil, ErrInvalidClientID
	}
	if clientModify.NationalID == nil &&
		clientModify.FirstName == nil &&
		clientModify.LastName == nil &&
		clientModify.Phone == nil &&
		clientModify.Address == nil &&
		clientModify.Email == nil &&
		clientModify.Zone == nil &&
		clientModify.Disability == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if clientModify.NationalID != nil && !isValidNationalID(*clientModify.NationalID) {
		return nil, ErrInvalidNationalID
	}
	if clientModify.FirstName != nil && !isValidName(*clientModify.FirstName) {
		return nil, ErrInvalidName
	}
	if clientModify.LastName != nil && !isValidName(*clientModify.LastName) {
		return nil, ErrInvalidName
	}
	if clientModify.Phone != nil && !isValidPhone(*clientModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if clientModify.Zone != nil && !clientModify.Zone.IsValid() {
		return nil, ErrInvalidZone
	}

	client, err := s.repository.Update(ctx, clientModify)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

func (s *Client) GetClient(ctx context.Context, id int64) (*entities.Client, error) {
	client, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return client, nil
}

func (s *Client) GetClients(ctx context.Context) ([]entities.Client, error) {
	clients, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get clients: %w", err)
	}

	return clients, nil
}

func (s *Client) DeleteClient(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidClientID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
