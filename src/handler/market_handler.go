package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"cardexcli/src/model"
	"cardexcli/src/repository"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
)

type openTradeLister interface {
	ListOpen(ctx context.Context, options repository.TradeListOptions) ([]model.OpenTrade, error)
}

type completedTradeLister interface {
	ListCompleted(ctx context.Context, options repository.TradeListOptions) ([]model.CompletedTrade, error)
}

type collectionLister interface {
	List(ctx context.Context) ([]model.Collection, error)
}

type cardFinder interface {
	FindByID(ctx context.Context, id string) (*model.Card, error)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

func parseListOptions(r *http.Request) (repository.TradeListOptions, bool) {
	options := repository.TradeListOptions{Limit: 20, SortBy: repository.SortDateDesc}

	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			return options, false
		}
		options.Limit = limit
	}

	if offsetParam := r.URL.Query().Get("offset"); offsetParam != "" {
		offset, err := strconv.Atoi(offsetParam)
		if err != nil || offset < 0 {
			return options, false
		}
		options.Offset = offset
	}

	switch sortBy := r.URL.Query().Get("sortBy"); sortBy {
	case "":
	case repository.SortDateDesc, repository.SortDateAsc:
		options.SortBy = sortBy
	default:
		return options, false
	}

	return options, true
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// OpenTradesHandler serves GET /trades as {"trades": [...]}.
// Supports limit, offset and sortBy (date_desc, date_asc).
func OpenTradesHandler(repo openTradeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, ok := parseListOptions(r)
		if !ok {
			http.Error(w, "invalid paging parameters", http.StatusBadRequest)
			return
		}

		trades, err := repo.ListOpen(r.Context(), options)
		if err != nil {
			logger.WithError(err).Error("failed to list open trades")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"trades": trades})
	}
}

// TradeHistoryHandler serves GET /trades/history as {"trades": [...]}.
func TradeHistoryHandler(repo completedTradeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, ok := parseListOptions(r)
		if !ok {
			http.Error(w, "invalid paging parameters", http.StatusBadRequest)
			return
		}

		trades, err := repo.ListCompleted(r.Context(), options)
		if err != nil {
			logger.WithError(err).Error("failed to list completed trades")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"trades": trades})
	}
}

func CollectionsHandler(repo collectionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collections, err := repo.List(r.Context())
		if err != nil {
			logger.WithError(err).Error("failed to list collections")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"collections": collections})
	}
}

// CardHandler serves GET /cards/{id}; unknown ids are a 404.
func CardHandler(repo cardFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "missing card id", http.StatusBadRequest)
			return
		}

		card, err := repo.FindByID(r.Context(), id)
		if err != nil {
			logger.WithError(err).WithField("card_id", id).Error("failed to fetch card")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if card == nil {
			http.Error(w, "card not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, card)
	}
}
