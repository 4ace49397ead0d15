package loadsapi

import (
	"testing"

	"github.com/google/uuid"

	"haulsaver-app/internal/domain/loads"
	"haulsaver-app/internal/domain/users"
)

func testLoad() loads.Load {
	return loads.Load{
		ID:     uuid.New(),
		UserID: uuid.New(),
		User: users.User{
			Name:     "Vera",
			Lastname: "Shipper",
			Tel:      "+1555000111",
			Email:    "vera@example.com",
		},
		Status: loads.StatusPublished,
	}
}

func TestContactForViewer(t *testing.T) {
	load := testLoad()

	t.Run("anonymous viewer gets nothing", func(t *testing.T) {
		if got := contactForViewer(load, nil); got != nil {
			t.Errorf("expected nil contact, got %+v", got)
		}
	})

	t.Run("viewer without profile unlock gets nothing", func(t *testing.T) {
		viewer := &users.User{ID: uuid.New(), RegistrationPaid: true}
		if got := contactForViewer(load, viewer); got != nil {
			t.Errorf("expected nil contact, got %+v", got)
		}
	})

	t.Run("unlocked viewer sees the contact block", func(t *testing.T) {
		viewer := &users.User{ID: uuid.New(), ProfileUnlockPaid: true}
		got := contactForViewer(load, viewer)
		if got == nil {
			t.Fatal("expected contact for unlocked viewer")
		}
		if got.Name != "Vera Shipper" || got.Email != "vera@example.com" || got.Tel != "+1555000111" {
			t.Errorf("unexpected contact: %+v", got)
		}
	})

	t.Run("owner always sees their own contact", func(t *testing.T) {
		owner := &users.User{ID: load.UserID}
		if got := contactForViewer(load, owner); got == nil {
			t.Error("owner should see their own contact without paying the unlock fee")
		}
	})
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 50},
		{-3, 50},
		{1, 1},
		{100, 100},
		{101, 50},
	}
	for _, tc := range cases {
		if got := clampLimit(tc.in); got != tc.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
