// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-vault-client/internal/app"
	"github.com/MKhiriev/go-vault-client/models"
)

// Endpoint identifies the vault call a response came from. Each endpoint
// allows a different subset of [models.ServiceResponse] variants.
type Endpoint int

const (
	EndpointStore Endpoint = iota
	EndpointInfo
	EndpointModify
	EndpointDelete
	EndpointContent
)

func (e Endpoint) String() string {
	switch e {
	case EndpointStore:
		return "store"
	case EndpointInfo:
		return "info"
	case EndpointModify:
		return "modify"
	case EndpointDelete:
		return "delete"
	case EndpointContent:
		return "content"
	default:
		return "endpoint(" + strconv.Itoa(int(e)) + ")"
	}
}

// Interpret maps a status code and a decoded body to an outcome and its
// display lines.
//
// The vault encodes success in the body shape and tells "already exists"
// (200) from "newly created" (201) by status only, so both axes are used.
// A Failure body is always a recoverable [models.ServiceError] whatever the
// status. A Stored body with a status other than 200/201 returns
// [ErrUnexpectedStatus]; a variant the endpoint never sends returns
// [ErrUnexpectedResponse].
func Interpret(endpoint Endpoint, status int, resp models.ServiceResponse) (models.Result, error) {
	switch r := resp.(type) {
	case models.Failure:
		return failureResult(r), nil

	case models.Stored:
		if endpoint == EndpointDelete || endpoint == EndpointContent {
			return models.Result{}, fmt.Errorf("%w: stored file body from %s endpoint", ErrUnexpectedResponse, endpoint)
		}
		return storedResult(endpoint, status, r)

	case models.DeleteResult:
		if endpoint != EndpointDelete {
			return models.Result{}, fmt.Errorf("%w: boolean body from %s endpoint", ErrUnexpectedResponse, endpoint)
		}
		return deleteResult(bool(r)), nil

	default:
		return models.Result{}, fmt.Errorf("%w: %T from %s endpoint", ErrUnexpectedResponse, resp, endpoint)
	}
}

func storedResult(endpoint Endpoint, status int, s models.Stored) (models.Result, error) {
	var (
		kind    models.OutcomeKind
		heading string
	)

	switch {
	case endpoint == EndpointModify && status == http.StatusOK:
		kind, heading = models.FileModified, app.MsgFileModified
	case endpoint != EndpointModify && status == http.StatusOK:
		kind, heading = models.FileExists, app.MsgFileExists
	case endpoint != EndpointModify && status == http.StatusCreated:
		kind, heading = models.FileStored, app.MsgFileStored
	default:
		return models.Result{}, fmt.Errorf("%w: %d from %s endpoint", ErrUnexpectedStatus, status, endpoint)
	}

	stored := s
	lines := []models.Line{
		{models.Styled(heading, models.StyleSuccess)},
		{models.Plain(app.MsgStoredAt), models.Styled(s.URL, models.StyleURL)},
		{models.Plain(app.MsgUniqueToken), models.Styled(s.Token, models.StyleToken)},
	}
	if s.Protected {
		lines = append(lines, models.Line{
			models.Plain(app.MsgProtectedPrefix),
			models.Styled(app.MsgProtected, models.StyleProtected),
			models.Plain(app.MsgFileSuffix),
		})
	} else {
		lines = append(lines, models.Line{
			models.Plain(app.MsgUnprotectedPrefix),
			models.Styled(app.MsgUnprotected, models.StyleUnprotected),
			models.Plain(app.MsgFileSuffix),
		})
	}
	lines = append(lines, models.Line{
		models.Plain(app.MsgAvailableFor),
		models.Styled(string(s.RetentionPeriod), models.StyleRetention),
	})
	if s.OneTimeDownload() {
		lines = append(lines, models.Line{
			models.Plain(app.MsgOneTimePrefix),
			models.Styled(app.MsgOneTimeDeleted, models.StyleProtected),
			models.Plain(app.MsgOneTimeSuffix),
		})
	}

	return models.Result{
		Outcome: models.Outcome{Kind: kind, Stored: &stored},
		Lines:   lines,
	}, nil
}

func failureResult(f models.Failure) models.Result {
	name := f.Name
	if f.Status != 0 {
		name = fmt.Sprintf("%s (%d)", f.Name, f.Status)
	}

	lines := make([]models.Line, 0, 2+len(f.Errors))
	lines = append(lines,
		models.Line{models.Plain(app.MsgBadResponse), models.Styled(name, models.StyleErrorName)},
		models.Line{models.Plain(app.MsgProbableCause), models.Styled(f.Message, models.StyleErrorMessage)},
	)
	for _, d := range f.Errors {
		lines = append(lines, models.Line{
			models.Plain(app.MsgDetailPrefix),
			models.Styled(d.Name, models.StyleErrorName),
			models.Plain(": "),
			models.Styled(d.Message, models.StyleErrorMessage),
		})
	}

	return models.Result{
		Outcome: models.Outcome{
			Kind:    models.ServiceError,
			Name:    f.Name,
			Message: f.Message,
			Details: f.Errors,
		},
		Lines: lines,
	}
}

func deleteResult(deleted bool) models.Result {
	if deleted {
		return models.Result{
			Outcome: models.Outcome{Kind: models.FileDeleted},
			Lines:   []models.Line{{models.Styled(app.MsgFileDeleted, models.StyleSuccess)}},
		}
	}
	return models.Result{
		Outcome: models.Outcome{Kind: models.FileNotDeleted},
		Lines:   []models.Line{{models.Styled(app.MsgFileNotDeleted, models.StyleFailure)}},
	}
}

// ForbiddenContent interprets a 403 on the content leg, which carries no
// JSON body. The message depends on whether a password was sent.
func ForbiddenContent(passwordSupplied bool) models.Result {
	if passwordSupplied {
		return clientFailure(app.NameIncorrectPassword, app.MsgIncorrectPassword)
	}
	return PasswordRequired()
}

// PasswordRequired is the outcome of asking for a protected file without a
// password.
func PasswordRequired() models.Result {
	return clientFailure(app.NamePasswordRequired, app.MsgPasswordRequired)
}

func clientFailure(name, message string) models.Result {
	return models.Result{
		Outcome: models.Outcome{Kind: models.ServiceError, Name: name, Message: message},
		Lines:   []models.Line{{models.Styled(message, models.StyleFailure)}},
	}
}

// Downloaded is the outcome of content written to path.
func Downloaded(path string) models.Result {
	return models.Result{
		Outcome: models.Outcome{Kind: models.FileDownloaded, Path: path},
		Lines: []models.Line{{
			models.Plain(app.MsgDownloadedTo),
			models.Styled(path, models.StylePath),
		}},
	}
}

// TransportFailure describes a request that never got an HTTP answer. The
// command still fails; the result only feeds the renderer.
func TransportFailure(err error) models.Result {
	return models.Result{
		Outcome: models.Outcome{Kind: models.TransportError, Message: err.Error()},
		Lines: []models.Line{{
			models.Plain(app.MsgTransportFailure),
			models.Styled(err.Error(), models.StyleFailure),
		}},
	}
}
