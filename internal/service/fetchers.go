package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itsDrac/nft-web/internal/model"
	"github.com/itsDrac/nft-web/internal/nav"
	"github.com/itsDrac/nft-web/internal/render"
)

// Fetcher pairs one backend read with one renderer.
type Fetcher interface {
	// Fetch loads the records for t and renders them. On failure the
	// error is returned along with the container's error fragment, which
	// is empty for containers that stay silent on failure.
	Fetch(ctx context.Context, t nav.Target) (render.Fragment, error)
	// NFT loads the record shown on a detail page.
	NFT(ctx context.Context, nftID int) (*model.NFT, error)
}

type FetchService struct {
	backend Backend
}

func NewFetchService(b Backend) *FetchService {
	return &FetchService{backend: b}
}

func (fs *FetchService) Fetch(ctx context.Context, t nav.Target) (render.Fragment, error) {
	if t.Container == render.WalletDetails && (t.MissingID || t.UserID == "") {
		slog.Warn("[FETCH] wallet requested without a user id")
		return render.MissingWalletUser(), nil
	}

	f, err := fs.fetch(ctx, t)
	if err != nil {
		slog.Error("[FETCH] failed to load container", "container", t.Container, "error", err)
		ef, _ := render.LoadError(t.Container)
		return ef, err
	}
	return f, nil
}

func (fs *FetchService) fetch(ctx context.Context, t nav.Target) (render.Fragment, error) {
	switch t.Container {
	case render.NFTGrid:
		nfts, err := fs.backend.ListNFTs(ctx)
		if err != nil {
			return render.Fragment{}, err
		}
		return render.NFTs(nfts), nil
	case render.CollectionList, render.CollectionSelect:
		collections, err := fs.backend.ListCollections(ctx)
		if err != nil {
			return render.Fragment{}, err
		}
		if t.Container == render.CollectionSelect {
			return render.CollectionOptions(collections), nil
		}
		return render.Collections(collections), nil
	case render.CategoriesList:
		categories, err := fs.backend.ListCategories(ctx)
		if err != nil {
			return render.Fragment{}, err
		}
		return render.Categories(categories), nil
	case render.ReportsList:
		reports, err := fs.backend.ListReports(ctx)
		if err != nil {
			return render.Fragment{}, err
		}
		return render.Reports(reports), nil
	case render.WalletDetails:
		wallet, err := fs.backend.GetWallet(ctx, t.UserID)
		if err != nil {
			return render.Fragment{}, err
		}
		return render.Wallet(*wallet), nil
	case render.BidsList:
		bids, err := fs.backend.ListBids(ctx, t.NFTID)
		if err != nil {
			return render.Fragment{}, err
		}
		return render.Bids(bids), nil
	}
	return render.Fragment{Container: t.Container}, fmt.Errorf("%w: %q", ErrUnknownContainer, t.Container)
}

func (fs *FetchService) NFT(ctx context.Context, nftID int) (*model.NFT, error) {
	nft, err := fs.backend.GetNFT(ctx, nftID)
	if err != nil {
		return nil, fmt.Errorf("load nft %d: %w", nftID, err)
	}
	return nft, nil
}
