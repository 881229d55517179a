package client

import (
	"context"

	"github.com/itsDrac/nft-web/internal/model"
)

func (c *Client) Login(ctx context.Context, form model.FormPayload) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.post(ctx, "/api/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, form model.FormPayload) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.post(ctx, "/api/register", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateNFT posts to /nfts. Unlike every other write it has no /api
// prefix; that is where the backend mounts it.
func (c *Client) CreateNFT(ctx context.Context, req model.CreateNFTRequest) (*model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, "/nfts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateReport(ctx context.Context, form model.FormPayload) (*model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, "/api/reports", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PlaceBid(ctx context.Context, req model.PlaceBidRequest) (*model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, "/api/bids", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, "/api/categories", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateCollection(ctx context.Context, req model.CreateCollectionRequest) (*model.MessageResponse, error) {
	var resp model.MessageResponse
	if err := c.post(ctx, "/api/collections", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
