package util

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/lib/pq"

	"medical-directory/internal/apperror"
	"medical-directory/internal/model/requestresponse"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// Responder : writes the JSON envelope. Development mode exposes internal error text.
type Responder struct {
	Development bool
}

func NewResponder(development bool) *Responder {
	return &Responder{Development: development}
}

func (rs *Responder) JSON(w http.ResponseWriter, statusCode int, envelope requestresponse.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.Printf("encoding response failed: %v", err)
	}
}

func (rs *Responder) Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	rs.JSON(w, statusCode, requestresponse.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (rs *Responder) Fail(w http.ResponseWriter, statusCode int, message string) {
	rs.JSON(w, statusCode, requestresponse.Envelope{
		Success: false,
		Error:   message,
	})
}

// Error : central error path. Known kinds keep their message, everything else becomes a 500.
func (rs *Responder) Error(w http.ResponseWriter, err error) {
	statusCode, message := Classify(err)
	envelope := requestresponse.Envelope{Success: false, Error: message}

	if statusCode == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		if rs.Development {
			envelope.Error = err.Error()
			envelope.Details = err.Error()
		}
	}

	rs.JSON(w, statusCode, envelope)
}

// Classify : status code and client message for err
func Classify(err error) (int, string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
		return appErr.Kind.HTTPStatus(), appErr.Message
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return http.StatusConflict, "a user with this " + conflictField(pqErr) + " already exists"
		case pqForeignKeyViolation:
			return http.StatusNotFound, "record not found"
		}
	}

	if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
		return http.StatusNotFound, "record not found"
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "malformed JSON"
	}

	return http.StatusInternalServerError, "internal server error"
}

// conflictField : column named by the unique constraint, e.g. users_email_key -> email
func conflictField(pqErr *pq.Error) string {
	if pqErr.Column != "" {
		return pqErr.Column
	}
	switch pqErr.Constraint {
	case "users_email_key":
		return "email"
	case "users_phone_key":
		return "phone"
	}
	return "field"
}
