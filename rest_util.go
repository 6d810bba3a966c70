package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	. "github.com/ttpr0/go-navigation/util"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

type none struct{}

type request_id_key struct{}

func ReadRequestBody[T any](r *http.Request) (T, error) {
	var req T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(data, &req)
	return req, err
}

func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

type Result struct {
	result any
	status int
}

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusOK,
	}
}

func BadRequest[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusBadRequest,
	}
}

func NotFound[T any](value T) Result {
	return Result{
		result: value,
		status: http.StatusNotFound,
	}
}

func RequestID(r *http.Request) string {
	id, _ := r.Context().Value(request_id_key{}).(string)
	return id
}

func MapPost[F any](app *mux.Router, path string, handler func(F) Result) {
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With("request_id", RequestID(r))
		logger.Info("POST " + path)
		body, err := ReadRequestBody[F](r)
		if err != nil {
			logger.Error("failed POST " + path + ": " + err.Error())
			WriteResponse(w, NewErrorResponse(path, "invalid request body"), http.StatusBadRequest)
			return
		}
		res := handler(body)
		if res.status != http.StatusOK {
			logger.Error("failed POST " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
		} else {
			logger.Info("successfully finished POST")
			WriteResponse(w, res.result, res.status)
		}
	}).Methods(http.MethodPost)
}

// Registers a GET handler whose request struct is filled from the query
// parameters named by the json tags of its fields.
func MapGet[F any](app *mux.Router, path string, handler func(F) Result) {
	var val F
	typ := reflect.TypeOf(val)
	num_field := typ.NumField()
	fields := NewList[Tuple[int, string]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		fields.Add(MakeTuple(i, tag))
	}
	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With("request_id", RequestID(r))
		logger.Info("GET " + path)
		query := r.URL.Query()
		t := reflect.New(typ).Elem()
		for _, field := range fields {
			value := query.Get(field.B)
			if value == "" {
				continue
			}
			if err := _SetField(t.Field(field.A), value); err != nil {
				logger.Error("failed GET " + path + ": " + err.Error())
				WriteResponse(w, NewErrorResponse(path, "invalid parameter "+field.B), http.StatusBadRequest)
				return
			}
		}
		value := t.Interface().(F)
		res := handler(value)
		if res.status != http.StatusOK {
			logger.Error("failed GET " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
		} else {
			logger.Info("successfully finished GET")
			WriteResponse(w, res.result, res.status)
		}
	}).Methods(http.MethodGet)
}

func _SetField(f reflect.Value, value string) error {
	switch f.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(num)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		num, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		f.SetUint(num)
	case reflect.Float32, reflect.Float64:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		f.SetFloat(num)
	case reflect.String:
		f.SetString(value)
	}
	return nil
}

//**********************************************************
// middleware
//**********************************************************

// Tags every request with an id, reusing an incoming X-Request-ID.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), request_id_key{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Rejects requests with 429 once the token bucket is empty.
func RateLimitMiddleware(limiter *rate.Limiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				RateLimitedTotal.Inc()
				WriteResponse(w, NewErrorResponse(r.URL.Path, "rate limit exceeded"), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
