package observability_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel_rooms/internal/adapters/observability"
	"hotel_rooms/internal/domain"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so the counters are non-zero
	observability.RoomsAdded.Inc()
	observability.ObserveAction("add")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "hotel_rooms_added_total") {
		t.Fatalf("expected hotel_rooms_added_total in output")
	}
	if !strings.Contains(out, "hotel_menu_actions_total") {
		t.Fatalf("expected hotel_menu_actions_total in output")
	}
}

func TestErrKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{fmt.Errorf("%w: bad cost", domain.ErrInvalidValue), "invalid_value"},
		{fmt.Errorf("%w: room A", domain.ErrDuplicateRoom), "duplicate_room"},
		{domain.ErrEmptyRoomList, "empty_room_list"},
		{errors.New("boom"), "unexpected"},
	}
	for _, c := range cases {
		if got := observability.ErrKind(c.err); got != c.want {
			t.Fatalf("ErrKind(%v) = %s, want %s", c.err, got, c.want)
		}
	}
}
