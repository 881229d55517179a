package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/itsDrac/nft-web/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend is a fake marketplace API that records every call.
type stubBackend struct {
	mu     sync.Mutex
	hits   map[string]int
	bodies map[string]map[string]any
	routes map[string]http.HandlerFunc
}

func (s *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	s.mu.Lock()
	s.hits[key]++
	if r.Body != nil {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if json.Unmarshal(raw, &body) == nil {
			s.bodies[key] = body
		}
	}
	s.mu.Unlock()

	h, ok := s.routes[key]
	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func (s *stubBackend) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key]
}

func (s *stubBackend) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.hits {
		n += c
	}
	return n
}

func (s *stubBackend) body(key string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[key]
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func newServices(t *testing.T, routes map[string]http.HandlerFunc) (*Services, *stubBackend) {
	t.Helper()
	stub := &stubBackend{
		hits:   map[string]int{},
		bodies: map[string]map[string]any{},
		routes: routes,
	}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return NewServices(client.New(srv.URL, nil)), stub
}

// submit handles a form the way an in-place (htmx) caller does.
func submit(t *testing.T, s *Services, kind Kind, userID string, values url.Values) Outcome {
	t.Helper()
	out, err := s.Forms.Handle(context.Background(), Submission{Kind: kind, Values: values, UserID: userID, Refresh: true})
	require.NoError(t, err)
	return out
}

func TestParseKind(t *testing.T) {
	for id, kind := range formIDs {
		got, ok := ParseKind(id)
		assert.True(t, ok)
		assert.Equal(t, kind, got)
		assert.Equal(t, id, kind.ID())
	}

	_, ok := ParseKind("searchForm")
	assert.False(t, ok)
	assert.Empty(t, FormUnknown.ID())
}

func TestHandleUnknownForm(t *testing.T) {
	s, stub := newServices(t, nil)

	_, err := s.Forms.Handle(context.Background(), Submission{Kind: FormUnknown})
	assert.ErrorIs(t, err, ErrUnknownForm)
	assert.Zero(t, stub.total())
}

func TestPlaceBid(t *testing.T) {
	t.Run("success without refresh fetches nothing", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /api/bids":       reply(http.StatusOK, `{"message": "Bid placed"}`),
			"GET /api/nfts/7/bids": reply(http.StatusOK, `[]`),
		})

		out, err := s.Forms.Handle(context.Background(), Submission{
			Kind:   FormBid,
			Values: url.Values{"NFTID": {"7"}, "BidAmount": {"12.5"}, "BidderUsername": {"bob"}},
		})
		require.NoError(t, err)

		assert.True(t, out.Success)
		assert.Nil(t, out.Refresh)
		assert.Equal(t, 1, stub.count("POST /api/bids"))
		assert.Zero(t, stub.count("GET /api/nfts/7/bids"))
	})

	t.Run("success refreshes bids exactly once", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /api/bids":       reply(http.StatusOK, `{"message": "Bid placed"}`),
			"GET /api/nfts/7/bids": reply(http.StatusOK, `[{"BidderUsername": "bob", "BidAmount": 12.5, "BidAt": "2024-05-01T10:00:00"}]`),
		})

		out := submit(t, s, FormBid, "", url.Values{
			"NFTID":          {"7"},
			"BidAmount":      {"12.5"},
			"BidderUsername": {"bob"},
		})

		assert.True(t, out.Success)
		assert.Equal(t, "Bid placed successfully!", out.Message)
		assert.Empty(t, out.Navigate)
		assert.Nil(t, out.Values)
		require.NotNil(t, out.Refresh)
		assert.Len(t, out.Refresh.Blocks, 1)

		assert.Equal(t, 1, stub.count("POST /api/bids"))
		assert.Equal(t, 1, stub.count("GET /api/nfts/7/bids"))
		assert.Equal(t, map[string]any{
			"NFTID":          float64(7),
			"BidAmount":      12.5,
			"BidderUsername": "bob",
		}, stub.body("POST /api/bids"))
	})

	t.Run("rejection keeps the form and skips the refresh", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /api/bids": reply(http.StatusBadRequest, `{"detail": "Invalid amount"}`),
		})
		values := url.Values{"NFTID": {"7"}, "BidAmount": {"3"}, "BidderUsername": {"bob"}}

		out := submit(t, s, FormBid, "", values)

		assert.False(t, out.Success)
		assert.Equal(t, "Failed to place bid: Invalid amount", out.Message)
		assert.Nil(t, out.Refresh)
		assert.Equal(t, values, out.Values)
		assert.Zero(t, stub.count("GET /api/nfts/7/bids"))
	})

	t.Run("rejection without detail falls back to status", func(t *testing.T) {
		s, _ := newServices(t, map[string]http.HandlerFunc{
			"POST /api/bids": reply(http.StatusConflict, `{}`),
		})

		out := submit(t, s, FormBid, "", url.Values{"NFTID": {"7"}, "BidAmount": {"3"}, "BidderUsername": {"bob"}})
		assert.Equal(t, "Failed to place bid: 409 Conflict.", out.Message)
	})

	invalid := []struct {
		name   string
		values url.Values
		want   string
	}{
		{"blank username", url.Values{"NFTID": {"7"}, "BidAmount": {"3"}, "BidderUsername": {"  "}}, "Please enter your username."},
		{"username checked first", url.Values{"NFTID": {"7"}, "BidAmount": {"x"}}, "Please enter your username."},
		{"zero amount", url.Values{"NFTID": {"7"}, "BidAmount": {"0"}, "BidderUsername": {"bob"}}, "Please enter a valid bid amount greater than zero."},
		{"negative amount", url.Values{"NFTID": {"7"}, "BidAmount": {"-2"}, "BidderUsername": {"bob"}}, "Please enter a valid bid amount greater than zero."},
		{"not a number", url.Values{"NFTID": {"7"}, "BidAmount": {"ten"}, "BidderUsername": {"bob"}}, "Please enter a valid bid amount greater than zero."},
		{"NaN", url.Values{"NFTID": {"7"}, "BidAmount": {"NaN"}, "BidderUsername": {"bob"}}, "Please enter a valid bid amount greater than zero."},
		{"empty amount", url.Values{"NFTID": {"7"}, "BidderUsername": {"bob"}}, "Please enter a valid bid amount greater than zero."},
		{"bad nft id", url.Values{"NFTID": {"abc"}, "BidAmount": {"1"}, "BidderUsername": {"bob"}}, "Please enter a valid number for NFT ID."},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			s, stub := newServices(t, nil)

			out := submit(t, s, FormBid, "", tt.values)

			assert.False(t, out.Success)
			assert.Equal(t, tt.want, out.Message)
			assert.Zero(t, stub.total(), "validation failures must not reach the backend")
		})
	}
}

func TestLoginAndRegistration(t *testing.T) {
	tests := []struct {
		name          string
		kind          Kind
		route         string
		handler       http.HandlerFunc
		checkResponse func(t *testing.T, out Outcome, stub *stubBackend)
	}{
		{
			name:    "login stores the user and goes to the wallet",
			kind:    FormLogin,
			route:   "POST /api/login",
			handler: reply(http.StatusOK, `{"user_id": 42}`),
			checkResponse: func(t *testing.T, out Outcome, stub *stubBackend) {
				assert.True(t, out.Success)
				assert.Equal(t, "42", out.UserID)
				assert.Equal(t, "/users/42/wallet", out.Navigate)
				assert.Equal(t, map[string]any{"Username": "alice", "Email": "a@example.com"}, stub.body("POST /api/login"))
			},
		},
		{
			name:    "login rejected",
			kind:    FormLogin,
			route:   "POST /api/login",
			handler: reply(http.StatusUnauthorized, `{"detail": "Invalid credentials"}`),
			checkResponse: func(t *testing.T, out Outcome, stub *stubBackend) {
				assert.False(t, out.Success)
				assert.Equal(t, "Login failed: Invalid credentials", out.Message)
				assert.Empty(t, out.UserID)
				assert.Empty(t, out.Navigate)
			},
		},
		{
			name:    "login rejection without detail shows status text",
			kind:    FormLogin,
			route:   "POST /api/login",
			handler: reply(http.StatusUnauthorized, `{}`),
			checkResponse: func(t *testing.T, out Outcome, stub *stubBackend) {
				assert.Equal(t, "Login failed: Unauthorized", out.Message)
			},
		},
		{
			name:    "registration with field errors",
			kind:    FormRegistration,
			route:   "POST /api/register",
			handler: reply(http.StatusUnprocessableEntity, `{"detail": [{"msg": "field required"}, {"msg": "invalid email"}]}`),
			checkResponse: func(t *testing.T, out Outcome, stub *stubBackend) {
				assert.Equal(t, "Registration failed: field required, invalid email", out.Message)
			},
		},
		{
			name:    "registration succeeds with string id",
			kind:    FormRegistration,
			route:   "POST /api/register",
			handler: reply(http.StatusOK, `{"user_id": "9", "message": "created"}`),
			checkResponse: func(t *testing.T, out Outcome, stub *stubBackend) {
				assert.Equal(t, "9", out.UserID)
				assert.Equal(t, "/users/9/wallet", out.Navigate)
			},
		},
		{
			name:    "success without user id is unexpected",
			kind:    FormLogin,
			route:   "POST /api/login",
			handler: reply(http.StatusOK, `{"message": "ok"}`),
			checkResponse: func(t *testing.T, out Outcome, stub *stubBackend) {
				assert.False(t, out.Success)
				assert.Equal(t, "An unexpected error occurred during login.", out.Message)
			},
		},
		{
			name:    "malformed body is unexpected",
			kind:    FormRegistration,
			route:   "POST /api/register",
			handler: reply(http.StatusOK, `<html>`),
			checkResponse: func(t *testing.T, out Outcome, stub *stubBackend) {
				assert.Equal(t, "An unexpected error occurred during registration.", out.Message)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, stub := newServices(t, map[string]http.HandlerFunc{tt.route: tt.handler})
			out := submit(t, s, tt.kind, "", url.Values{"Username": {"alice"}, "Email": {"a@example.com"}})
			tt.checkResponse(t, out, stub)
		})
	}
}

func TestLoginBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	s := NewServices(client.New(srv.URL, nil))

	out := submit(t, s, FormLogin, "", url.Values{"Username": {"alice"}})
	assert.Equal(t, "An unexpected error occurred during login.", out.Message)
}

func TestCreateNFT(t *testing.T) {
	t.Run("requires a session user", func(t *testing.T) {
		s, stub := newServices(t, nil)
		out := submit(t, s, FormCreateNFT, "", url.Values{"Title": {"t"}})
		assert.Equal(t, "Owner ID not found. Please log in.", out.Message)
		assert.Zero(t, stub.total())
	})

	t.Run("posts without api prefix and navigates", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /nfts": reply(http.StatusOK, `{"message": "NFT created successfully"}`),
		})

		out := submit(t, s, FormCreateNFT, "5", url.Values{
			"Title":        {"Sunset"},
			"Description":  {"orange"},
			"CollectionID": {""},
		})

		assert.True(t, out.Success)
		assert.Equal(t, "NFT created successfully!", out.Message)
		assert.Equal(t, "/nfts?user_id=5", out.Navigate)
		assert.Equal(t, map[string]any{
			"Title":        "Sunset",
			"Description":  "orange",
			"OwnerID":      float64(5),
			"CollectionID": nil,
		}, stub.body("POST /nfts"))
	})

	t.Run("collection id is coerced", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /nfts": reply(http.StatusOK, `{}`),
		})
		submit(t, s, FormCreateNFT, "5", url.Values{"Title": {"t"}, "CollectionID": {"3"}})
		assert.Equal(t, float64(3), stub.body("POST /nfts")["CollectionID"])
	})

	t.Run("server error without detail", func(t *testing.T) {
		s, _ := newServices(t, map[string]http.HandlerFunc{
			"POST /nfts": reply(http.StatusInternalServerError, `not json`),
		})
		out := submit(t, s, FormCreateNFT, "5", url.Values{"Title": {"t"}})
		assert.Equal(t, "Failed to create NFT: 500 Internal Server Error.", out.Message)
	})
}

func TestSubmitReport(t *testing.T) {
	t.Run("nft id must be a number", func(t *testing.T) {
		s, stub := newServices(t, nil)
		out := submit(t, s, FormReport, "", url.Values{"NFTID": {"abc"}, "Reason": {"spam"}})
		assert.Equal(t, "Please enter a valid number for NFT ID.", out.Message)
		assert.Zero(t, stub.total())
	})

	t.Run("success refreshes reports", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /api/reports": reply(http.StatusOK, `{"message": "ok"}`),
			"GET /api/reports":  reply(http.StatusOK, `[]`),
		})

		out := submit(t, s, FormReport, "", url.Values{
			"NFTID":            {"3"},
			"Reason":           {"spam"},
			"ReporterUsername": {"alice"},
		})

		assert.True(t, out.Success)
		assert.Equal(t, "Report submitted successfully!", out.Message)
		require.NotNil(t, out.Refresh)
		assert.Equal(t, "No reports found.", out.Refresh.Message)
		assert.Equal(t, 1, stub.count("GET /api/reports"))
		assert.Equal(t, map[string]any{
			"NFTID":            float64(3),
			"Reason":           "spam",
			"ReporterUsername": "alice",
		}, stub.body("POST /api/reports"))
	})

	t.Run("failed refresh shows the load error", func(t *testing.T) {
		s, _ := newServices(t, map[string]http.HandlerFunc{
			"POST /api/reports": reply(http.StatusOK, `{}`),
			"GET /api/reports":  reply(http.StatusInternalServerError, `{}`),
		})
		out := submit(t, s, FormReport, "", url.Values{"NFTID": {"3"}})
		assert.True(t, out.Success)
		require.NotNil(t, out.Refresh)
		assert.Equal(t, "Error loading reports.", out.Refresh.Message)
	})
}

func TestCreateCategoryAndCollection(t *testing.T) {
	t.Run("category needs login", func(t *testing.T) {
		s, stub := newServices(t, nil)
		out := submit(t, s, FormCategory, "", url.Values{"CategoryName": {"art"}})
		assert.Equal(t, "Please log in to create a category.", out.Message)
		assert.Zero(t, stub.total())
	})

	t.Run("collection needs login", func(t *testing.T) {
		s, stub := newServices(t, nil)
		out := submit(t, s, FormCollection, "", url.Values{"CollectionName": {"c"}})
		assert.Equal(t, "Please log in to create a collection.", out.Message)
		assert.Zero(t, stub.total())
	})

	t.Run("category created", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /api/categories": reply(http.StatusOK, `{"message": "ok", "category_id": 4}`),
			"GET /api/categories":  reply(http.StatusOK, `[{"CategoryID": 4, "CategoryName": "art"}]`),
		})

		out := submit(t, s, FormCategory, "8", url.Values{"CategoryName": {"art"}})

		assert.Equal(t, "Category created successfully!", out.Message)
		require.NotNil(t, out.Refresh)
		assert.Len(t, out.Refresh.Blocks, 1)
		assert.Equal(t, map[string]any{"CategoryName": "art", "CreatorID": float64(8)}, stub.body("POST /api/categories"))
	})

	t.Run("category rejected", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /api/categories": reply(http.StatusBadRequest, `{"detail": "Category already exists"}`),
		})
		out := submit(t, s, FormCategory, "8", url.Values{"CategoryName": {"art"}})
		assert.Equal(t, "Failed to create category: Category already exists", out.Message)
		assert.Zero(t, stub.count("GET /api/categories"))
	})

	t.Run("collection created", func(t *testing.T) {
		s, stub := newServices(t, map[string]http.HandlerFunc{
			"POST /api/collections": reply(http.StatusOK, `{"message": "ok", "collection_id": 2}`),
			"GET /api/collections":  reply(http.StatusOK, `[{"CollectionID": 2, "CollectionName": "c", "CreatorID": 8}]`),
		})

		out := submit(t, s, FormCollection, "8", url.Values{"CollectionName": {"c"}, "CategoryID": {"4"}})

		assert.Equal(t, "Collection created successfully!", out.Message)
		require.NotNil(t, out.Refresh)
		assert.Len(t, out.Refresh.Blocks, 1)
		assert.Equal(t, map[string]any{
			"CollectionName": "c",
			"CreatorID":      float64(8),
			"CategoryID":     float64(4),
		}, stub.body("POST /api/collections"))
	})

	t.Run("collection list failure refreshes nothing", func(t *testing.T) {
		s, _ := newServices(t, map[string]http.HandlerFunc{
			"POST /api/collections": reply(http.StatusOK, `{}`),
			"GET /api/collections":  reply(http.StatusBadGateway, ``),
		})
		out := submit(t, s, FormCollection, "8", url.Values{"CollectionName": {"c"}})
		assert.True(t, out.Success)
		assert.Nil(t, out.Refresh)
	})
}
