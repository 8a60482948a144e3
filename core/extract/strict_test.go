package extract

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leofalp/snipex/core/result"
)

func TestStrict_Success(t *testing.T) {
	data, err := Strict(`answer: {"x": 1}`)
	if err != nil {
		t.Fatalf("Strict() error = %v", err)
	}
	want := map[string]any{"x": float64(1)}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("Strict() data = %#v, want %#v", data, want)
	}
}

func TestStrict_FailureCarriesResult(t *testing.T) {
	data, err := Strict(`nothing structured here`)
	if err == nil {
		t.Fatal("Strict() error = nil, want ResultError")
	}
	if data != nil {
		t.Errorf("Strict() data = %#v, want nil", data)
	}

	var resErr *ResultError
	if !errors.As(err, &resErr) {
		t.Fatalf("error %T is not a *ResultError", err)
	}
	if resErr.Result.Status != result.StatusFail {
		t.Errorf("carried status = %v, want fail", resErr.Result.Status)
	}
	if err.Error() != resErr.Result.Comments {
		t.Errorf("Error() = %q, want comments %q", err.Error(), resErr.Result.Comments)
	}
}

func TestStrict_CheckIsAnError(t *testing.T) {
	// A repaired value is usable but unverified; Strict refuses it.
	_, err := Strict(`{ "name": "Alice", "age": 30 `)
	if err == nil {
		t.Fatal("Strict() error = nil, want error for check outcome")
	}

	var resErr *ResultError
	if !errors.As(err, &resErr) {
		t.Fatalf("error %T is not a *ResultError", err)
	}
	if resErr.Result.Status != result.StatusCheck {
		t.Errorf("carried status = %v, want check", resErr.Result.Status)
	}
	if resErr.Result.Data == nil {
		t.Error("carried result should keep the repaired data for inspection")
	}
}
