package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Normalize(t *testing.T) {
	cases := []struct {
		name          string
		in            ListQuery
		page, perPage int
	}{
		{"defaults", ListQuery{}, 1, 20},
		{"negative page", ListQuery{Page: -3, PerPage: 5}, 1, 5},
		{"zero per page", ListQuery{Page: 2, PerPage: 0}, 2, 20},
		{"clamped per page", ListQuery{Page: 1, PerPage: 500}, 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.in
			q.Normalize()
			assert.Equal(t, tc.page, q.Page)
			assert.Equal(t, tc.perPage, q.PerPage)
		})
	}
}

func TestListQuery_Bounds(t *testing.T) {
	q := ListQuery{Page: 2, PerPage: 1}
	start, end := q.Bounds(3)
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, end)

	q = ListQuery{Page: 9, PerPage: 20}
	start, end = q.Bounds(3)
	assert.Equal(t, start, end, "out of range page is empty")

	q = ListQuery{Page: math.MaxInt, PerPage: 20}
	start, end = q.Bounds(3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}

func TestOffset_Saturates(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 20))
	assert.Equal(t, 40, Offset(3, 20))
	assert.Equal(t, 0, Offset(5, 0))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 20))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/20+2, 20))
	assert.Equal(t, (math.MaxInt/20)*20, Offset(math.MaxInt/20+1, 20))
}

func TestStartupStatus_Text(t *testing.T) {
	assert.Equal(t, "Kutilmoqda", StartupStatusPending.Text())
	assert.Equal(t, "▶️ Faol", StartupStatusActive.DecoratedText())
	assert.Equal(t, "archived", StartupStatus("archived").Text())
	assert.Equal(t, "archived", StartupStatus("archived").DecoratedText())
}

func TestUser_UserStatus(t *testing.T) {
	id := int64(42)
	assert.Equal(t, "active", (&User{TelegramID: &id}).UserStatus())
	assert.Equal(t, "inactive", (&User{}).UserStatus())
}
