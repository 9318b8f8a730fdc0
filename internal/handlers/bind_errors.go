package handlers

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

const (
	malformedBodyMessage  = "Malformed JSON request body"
	invalidQueryMessage   = "Invalid query parameters"
	mustBeNumberMessage   = "must be a number"
	mustBeIntegerMessage  = "must be an integer"
	mustBeBooleanMessage  = "must be a boolean"
	mustBeTextMessage     = "must be a string"
	mustBeObjectMessage   = "must be an object"
	mustBeArrayMessage    = "must be an array"
	unexpectedTypeMessage = "has an unexpected type"
)

// jsonBindMessage - текст для клиента вместо сырой ошибки encoding/json
func jsonBindMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + ": " + typeMessage(typeErr.Type)
	}
	return malformedBodyMessage
}

// queryBindMessage ищет первый параметр, который не разбирается в тип поля obj.
// gin возвращает ошибку strconv без имени параметра, поэтому разбираем заново.
func queryBindMessage(query url.Values, obj interface{}) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return invalidQueryMessage
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		value := query.Get(name)
		if value == "" {
			continue
		}
		if msg := parseCheck(field.Type, value); msg != "" {
			return name + ": " + msg
		}
	}
	return invalidQueryMessage
}

func parseCheck(t reflect.Type, value string) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		if _, err := strconv.ParseFloat(value, t.Bits()); err != nil {
			return mustBeNumberMessage
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if _, err := strconv.ParseInt(value, 10, t.Bits()); err != nil {
			return mustBeIntegerMessage
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if _, err := strconv.ParseUint(value, 10, t.Bits()); err != nil {
			return mustBeIntegerMessage
		}
	case reflect.Bool:
		if _, err := strconv.ParseBool(value); err != nil {
			return mustBeBooleanMessage
		}
	}
	return ""
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return unexpectedTypeMessage
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return mustBeNumberMessage
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return mustBeIntegerMessage
	case reflect.Bool:
		return mustBeBooleanMessage
	case reflect.String:
		return mustBeTextMessage
	case reflect.Struct, reflect.Map:
		return mustBeObjectMessage
	case reflect.Slice, reflect.Array:
		return mustBeArrayMessage
	}
	return unexpectedTypeMessage
}
