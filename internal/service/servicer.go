package service

import (
	"context"

	"github.com/itsDrac/nft-web/internal/model"
)

// Backend is the part of the marketplace client the services depend on.
// *client.Client satisfies it.
type Backend interface {
	ListNFTs(context.Context) ([]model.NFT, error)
	GetNFT(context.Context, int) (*model.NFT, error)
	ListCollections(context.Context) ([]model.Collection, error)
	ListCategories(context.Context) ([]model.Category, error)
	ListReports(context.Context) ([]model.Report, error)
	GetWallet(ctx context.Context, userID string) (*model.Wallet, error)
	ListBids(ctx context.Context, nftID int) ([]model.Bid, error)

	Login(context.Context, model.FormPayload) (*model.AuthResponse, error)
	Register(context.Context, model.FormPayload) (*model.AuthResponse, error)
	CreateNFT(context.Context, model.CreateNFTRequest) (*model.MessageResponse, error)
	CreateReport(context.Context, model.FormPayload) (*model.MessageResponse, error)
	PlaceBid(context.Context, model.PlaceBidRequest) (*model.MessageResponse, error)
	CreateCategory(context.Context, model.CreateCategoryRequest) (*model.MessageResponse, error)
	CreateCollection(context.Context, model.CreateCollectionRequest) (*model.MessageResponse, error)
}
