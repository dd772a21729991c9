package usecase

import (
	"context"
	"errors"
	"strings"

	"revenda_veiculos/internal/domain/entities"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type IClientUseCase interface {
	Create(ctx context.Context, name, email, cpf string) (*entities.Client, error)
	Update(ctx context.Context, id, name, email string) (*entities.Client, error)
	GetByID(ctx context.Context, id string) (*entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	uow  interfaces.IUnitOfWork
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, uow interfaces.IUnitOfWork) *ClientUseCase {
	return &ClientUseCase{repo: repo, uow: uow}
}

// Create registers a buyer. The Cpf is unique; a second registration fails
// with ErrCpfAlreadyExists.
func (u *ClientUseCase) Create(ctx context.Context, name, email, rawCpf string) (*entities.Client, error) {
	log := logger.FromContext(ctx)

	cpf, err := entities.ParseCpf(rawCpf)
	if err != nil {
		return nil, err
	}
	c, err := entities.NewClient(name, email, cpf)
	if err != nil {
		return nil, err
	}

	var changes entities.ChangeSet
	changes.Insert(c)
	if err := u.uow.Commit(ctx, changes); err != nil {
		if errors.Is(err, entities.ErrDuplicateKey) {
			log.Info("[client][usecase] cpf already registered")
			return nil, entities.ErrCpfAlreadyExists
		}
		log.Error("[client][usecase] commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("[client][usecase] created", zap.String("client_id", c.ID))
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id, name, email string) (*entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Update(name, email); err != nil {
		return nil, err
	}

	var changes entities.ChangeSet
	changes.Update(c)
	if err := u.uow.Commit(ctx, changes); err != nil {
		logger.FromContext(ctx).Error("[client][usecase] commit failed", zap.String("client_id", c.ID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (*entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entities.ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, entities.ErrClientNotFound
	}
	return c, nil
}
