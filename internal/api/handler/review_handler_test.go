package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

func TestReviewHandler_Create_AuthorFromToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubFacade{
		createReviewFn: func(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
			if in.UserID != "guest-1" {
				t.Fatalf("author must come from the token, got %s", in.UserID)
			}
			if in.PlaceID != "place-1" || in.Rating != 4 {
				t.Fatalf("payload not forwarded: %+v", in)
			}
			return domain.NewReview(in.Text, in.Rating, in.PlaceID, in.UserID)
		},
	}
	handler := NewReviewHandler(stub)

	body := strings.NewReader(`{"text":"great stay","rating":4,"place_id":"place-1","user_id":"someone-else"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "guest-1")
	c.Set("is_admin", false)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestReviewHandler_Create_RatingOutOfRange(t *testing.T) {
	e := newTestEcho()
	handler := NewReviewHandler(&stubFacade{})

	body := strings.NewReader(`{"text":"meh","rating":6,"place_id":"place-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "guest-1")
	c.Set("is_admin", false)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestReviewHandler_Delete_NonAuthorForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubFacade{
		getReviewFn: func(ctx context.Context, id string) (*domain.Review, error) {
			return domain.NewReview("nice", 5, "place-1", "author-1")
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/rev-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("rev-1")
	c.Set("user_id", "intruder-1")
	c.Set("is_admin", false)

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReviewHandler_Delete_AdminAllowed(t *testing.T) {
	e := newTestEcho()
	stub := &stubFacade{
		getReviewFn: func(ctx context.Context, id string) (*domain.Review, error) {
			return domain.NewReview("nice", 5, "place-1", "author-1")
		},
		deleteReviewFn: func(ctx context.Context, id string) (bool, error) {
			if id != "rev-1" {
				t.Fatalf("unexpected id %s", id)
			}
			return true, nil
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/rev-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("rev-1")
	c.Set("user_id", "admin-1")
	c.Set("is_admin", true)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReviewHandler_Delete_MissingReview(t *testing.T) {
	e := newTestEcho()
	stub := &stubFacade{
		getReviewFn: func(ctx context.Context, id string) (*domain.Review, error) {
			return nil, domain.ErrReviewNotFound
		},
	}
	handler := NewReviewHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	c.Set("user_id", "guest-1")
	c.Set("is_admin", false)

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
