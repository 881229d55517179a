package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/itsDrac/nft-web/internal/model"
)

func (c *Client) ListNFTs(ctx context.Context) ([]model.NFT, error) {
	var nfts []model.NFT
	if err := c.get(ctx, "/api/nfts", &nfts); err != nil {
		return nil, err
	}
	return nfts, nil
}

// GetNFT picks one NFT out of the list endpoint; the backend has no JSON
// endpoint for a single NFT.
func (c *Client) GetNFT(ctx context.Context, nftID int) (*model.NFT, error) {
	nfts, err := c.ListNFTs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range nfts {
		if nfts[i].NFTID == nftID {
			return &nfts[i], nil
		}
	}
	return nil, fmt.Errorf("nft %d: %w", nftID, ErrNotFound)
}

func (c *Client) ListCollections(ctx context.Context) ([]model.Collection, error) {
	var collections []model.Collection
	if err := c.get(ctx, "/api/collections", &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListReports(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := c.get(ctx, "/api/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) GetWallet(ctx context.Context, userID string) (*model.Wallet, error) {
	var wallet model.Wallet
	if err := c.get(ctx, "/api/users/"+url.PathEscape(userID)+"/wallet", &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ListBids returns the bids in the order the backend sent them.
func (c *Client) ListBids(ctx context.Context, nftID int) ([]model.Bid, error) {
	var bids []model.Bid
	if err := c.get(ctx, fmt.Sprintf("/api/nfts/%d/bids", nftID), &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// Ping checks the backend answers at all; the body is ignored.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/", nil)
}
