package view

import (
	"errors"
	"net/http"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
)

type Status string

const (
	StatusLoading      Status = "loading"
	StatusReady        Status = "ready"
	StatusNoIdentifier Status = "no_identifier"
	StatusNotFound     Status = "not_found"
	StatusFetchFailed  Status = "fetch_failed"
)

// HTTPStatus maps a page status onto the response code of the page endpoint.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusReady:
		return http.StatusOK
	case StatusLoading:
		return http.StatusAccepted
	case StatusNoIdentifier:
		return http.StatusBadRequest
	case StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// StatusOf classifies a load error.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusReady
	case errors.Is(err, apperr.ErrNoIdentifier):
		return StatusNoIdentifier
	case errors.Is(err, apperr.ErrNotFound):
		return StatusNotFound
	default:
		return StatusFetchFailed
	}
}

type ActionKind string

const (
	ActionRetry ActionKind = "retry"
	ActionHome  ActionKind = "home"
)

type Action struct {
	Kind  ActionKind `json:"kind"`
	Label string     `json:"label"`
	Href  string     `json:"href,omitempty"`
}

// Notice is the human readable part of a non-ready screen.
type Notice struct {
	Title   string  `json:"title"`
	Message string  `json:"message"`
	Action  *Action `json:"action,omitempty"`
}

var homeAction = &Action{Kind: ActionHome, Label: "Return home", Href: "/"}

func retryAction(href string) *Action {
	return &Action{Kind: ActionRetry, Label: "Try again", Href: href}
}

func noticeFor(status Status, retryHref string) *Notice {
	switch status {
	case StatusLoading:
		return &Notice{Title: "Loading", Message: "Fetching the article."}
	case StatusNoIdentifier:
		return &Notice{
			Title:   "No article selected",
			Message: "The link does not name an article.",
			Action:  homeAction,
		}
	case StatusNotFound:
		return &Notice{
			Title:   "Article not found",
			Message: "The article you are looking for does not exist or has been moved.",
			Action:  homeAction,
		}
	case StatusFetchFailed:
		return &Notice{
			Title:   "Something went wrong",
			Message: "We could not load articles right now. Please try again.",
			Action:  retryAction(retryHref),
		}
	default:
		return nil
	}
}
