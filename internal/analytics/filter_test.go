package analytics

import (
	"testing"
	"time"

	"dmsanalytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func boolp(b bool) *bool { return &b }

func at(y int, m time.Month, d, h, min int) *time.Time {
	t := time.Date(y, m, d, h, min, 0, 0, time.UTC)
	return &t
}

func day(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func sampleDocuments() []model.Document {
	return []model.Document{
		{ID: 1, Title: "Budget", Status: strp("draft"), DocType: strp("Memo"), CreatedByName: strp("Ana"), CreatedAt: at(2024, 3, 1, 8, 0)},
		{ID: 2, Title: "Policy", Status: strp("published"), DocType: strp("Order"), CreatedByName: strp("Ben"), CreatedAt: at(2024, 3, 2, 23, 59)},
		{ID: 3, Title: "Minutes", Status: strp("published"), DocType: nil, CreatedByName: strp("Ana"), CreatedAt: at(2024, 3, 5, 0, 0)},
		{ID: 4, Title: "Orphan", Status: nil, DocType: strp("Memo"), CreatedByName: nil, CreatedAt: nil},
	}
}

func ids(docs []model.Document) []int64 {
	out := make([]int64, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	rows := []int{5, 1, 4, 2, 3}
	even := Predicate[int](func(v int) bool { return v%2 == 0 })
	big := Predicate[int](func(v int) bool { return v > 2 })

	t.Run("no predicates returns a copy in order", func(t *testing.T) {
		got := Apply(rows)
		assert.Equal(t, rows, got)
		got[0] = 99
		assert.Equal(t, 5, rows[0])
	})

	t.Run("nil predicates are skipped", func(t *testing.T) {
		assert.Equal(t, rows, Apply(rows, nil, nil))
	})

	t.Run("conjunction is order independent", func(t *testing.T) {
		assert.Equal(t, []int{4}, Apply(rows, even, big))
		assert.Equal(t, []int{4}, Apply(rows, big, even))
	})

	t.Run("empty input yields empty non-nil output", func(t *testing.T) {
		got := Apply([]int{}, even)
		require.NotNil(t, got)
		assert.Empty(t, got)

		got = Apply[int](nil, even)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterDocuments(t *testing.T) {
	docs := sampleDocuments()

	tests := []struct {
		name     string
		criteria DocumentCriteria
		want     []int64
	}{
		{
			name:     "no constraint returns the table unchanged",
			criteria: DocumentCriteria{},
			want:     []int64{1, 2, 3, 4},
		},
		{
			name:     "status equality",
			criteria: DocumentCriteria{Status: strp("published")},
			want:     []int64{2, 3},
		},
		{
			name:     "null type never matches an active type filter",
			criteria: DocumentCriteria{DocType: strp("Memo")},
			want:     []int64{1, 4},
		},
		{
			name:     "creator equality excludes null creators",
			criteria: DocumentCriteria{Creator: strp("Ana")},
			want:     []int64{1, 3},
		},
		{
			name:     "date range is inclusive on both ends at any time of day",
			criteria: DocumentCriteria{Created: &DateRange{From: day(2024, 3, 2), To: day(2024, 3, 5)}},
			want:     []int64{2, 3},
		},
		{
			name:     "single day range",
			criteria: DocumentCriteria{Created: &DateRange{From: day(2024, 3, 1), To: day(2024, 3, 1)}},
			want:     []int64{1},
		},
		{
			name: "all filters compose by conjunction",
			criteria: DocumentCriteria{
				Status:  strp("published"),
				Creator: strp("Ana"),
				Created: &DateRange{From: day(2024, 3, 1), To: day(2024, 3, 31)},
			},
			want: []int64{3},
		},
		{
			name:     "value not present yields empty result",
			criteria: DocumentCriteria{Status: strp("archived")},
			want:     []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDocuments(docs, tt.criteria, time.UTC)
			assert.Equal(t, tt.want, ids(got))
			assert.Len(t, docs, 4, "input must not be modified")
		})
	}
}

func TestFilterDocuments_PublishedScenario(t *testing.T) {
	docs := []model.Document{
		{ID: 1, Status: strp("draft")},
		{ID: 2, Status: strp("published")},
		{ID: 3, Status: strp("published")},
	}

	got := FilterDocuments(docs, DocumentCriteria{Status: strp("published")}, time.UTC)

	assert.Len(t, got, 2)
	assert.Equal(t, map[string]int{"published": 2}, CountBy(got, documentStatus).Map())
}

func TestFilterDocuments_Location(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	// 2024-03-01 20:00 UTC is already 2024-03-02 in Manila.
	docs := []model.Document{{ID: 1, CreatedAt: at(2024, 3, 1, 20, 0)}}
	rng := &DateRange{From: day(2024, 3, 2), To: day(2024, 3, 2)}

	assert.Empty(t, FilterDocuments(docs, DocumentCriteria{Created: rng}, time.UTC))
	assert.Len(t, FilterDocuments(docs, DocumentCriteria{Created: rng}, manila), 1)
}

func TestFilterUsers(t *testing.T) {
	users := []model.User{
		{ID: 1, Username: "ana", Status: strp("active"), Role: strp("admin"), Department: strp("Registrar"), CreatedAt: at(2024, 1, 10, 9, 0)},
		{ID: 2, Username: "ben", Status: strp("inactive"), Role: strp("staff"), Department: nil, CreatedAt: at(2024, 2, 10, 9, 0)},
		{ID: 3, Username: "cy", Status: strp("active"), Role: strp("staff"), Department: strp("Registrar"), CreatedAt: at(2024, 3, 10, 9, 0)},
	}

	got := FilterUsers(users, UserCriteria{Status: strp("active"), Department: strp("Registrar")}, time.UTC)
	require.Len(t, got, 2)
	assert.Equal(t, "ana", got[0].Username)
	assert.Equal(t, "cy", got[1].Username)

	got = FilterUsers(users, UserCriteria{Role: strp("staff"), Created: &DateRange{From: day(2024, 2, 1), To: day(2024, 2, 28)}}, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, "ben", got[0].Username)

	assert.Equal(t, users, FilterUsers(users, UserCriteria{}, time.UTC))
}

func TestFilterAnnouncements(t *testing.T) {
	rows := []model.Announcement{
		{ID: 1, Status: strp("published"), VisibleToAll: boolp(true), CreatedByName: strp("Ana")},
		{ID: 2, Status: strp("draft"), VisibleToAll: boolp(false), CreatedByName: strp("Ben")},
		{ID: 3, Status: strp("published"), VisibleToAll: nil, CreatedByName: strp("Ana")},
		{ID: 4, Status: strp("published"), VisibleToAll: boolp(false), CreatedByName: strp("Ana")},
	}
	visible := VisibleToAll
	restricted := Restricted

	tests := []struct {
		name     string
		criteria AnnouncementCriteria
		want     []int64
	}{
		{"visible to all", AnnouncementCriteria{Visibility: &visible}, []int64{1}},
		{"restricted", AnnouncementCriteria{Visibility: &restricted}, []int64{2, 4}},
		{"restricted and published by Ana", AnnouncementCriteria{Visibility: &restricted, Status: strp("published"), Creator: strp("Ana")}, []int64{4}},
		{"no constraint", AnnouncementCriteria{}, []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAnnouncements(rows, tt.criteria, time.UTC)
			gotIDs := make([]int64, 0, len(got))
			for _, a := range got {
				gotIDs = append(gotIDs, a.ID)
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}

func TestFilterNotifications(t *testing.T) {
	rows := []model.Notification{
		{ID: 1, Type: strp("upload"), CreatedAt: at(2024, 5, 1, 0, 0)},
		{ID: 2, Type: strp("approval"), CreatedAt: at(2024, 5, 2, 0, 0)},
		{ID: 3, Type: strp("upload"), CreatedAt: at(2024, 5, 3, 0, 0)},
	}

	got := FilterNotifications(rows, NotificationCriteria{Type: strp("upload"), Created: &DateRange{From: day(2024, 5, 3), To: day(2024, 5, 3)}}, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	assert.Empty(t, FilterNotifications(nil, NotificationCriteria{Type: strp("upload")}, time.UTC))
}

func TestParseVisibility(t *testing.T) {
	v, err := ParseVisibility("Visible to All")
	require.NoError(t, err)
	assert.True(t, v.Flag())

	v, err = ParseVisibility("Restricted")
	require.NoError(t, err)
	assert.False(t, v.Flag())

	_, err = ParseVisibility("Hidden")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestCriteriaActive(t *testing.T) {
	assert.False(t, DocumentCriteria{}.Active())
	assert.True(t, DocumentCriteria{Creator: strp("Ana")}.Active())
	assert.False(t, UserCriteria{}.Active())
	assert.True(t, UserCriteria{Created: &DateRange{}}.Active())
	assert.False(t, AnnouncementCriteria{}.Active())
	assert.False(t, NotificationCriteria{}.Active())
	assert.True(t, NotificationCriteria{Type: strp("upload")}.Active())
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 29), d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)

	assert.True(t, day(2023, 12, 31).Before(day(2024, 1, 1)))
	assert.True(t, day(2024, 1, 2).After(day(2024, 1, 1)))
	assert.False(t, day(2024, 1, 1).Before(day(2024, 1, 1)))

	var parsed Date
	require.NoError(t, parsed.UnmarshalText([]byte("2024-07-04")))
	b, err := parsed.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04", string(b))
}

func TestDistinctAndBounds(t *testing.T) {
	docs := sampleDocuments()

	assert.Equal(t, []string{"draft", "published"}, Distinct(docs, documentStatus))
	assert.Equal(t, []string{"Memo", "Order"}, Distinct(docs, documentType))
	assert.Equal(t, []string{"Ana", "Ben"}, Distinct(docs, documentCreator))

	b := Bounds(docs, documentCreated, time.UTC)
	require.NotNil(t, b)
	assert.Equal(t, day(2024, 3, 1), b.From)
	assert.Equal(t, day(2024, 3, 5), b.To)

	assert.Nil(t, Bounds([]model.Document{{ID: 1}}, documentCreated, time.UTC))
}

func TestFilterOptions(t *testing.T) {
	opts := DocumentFilterOptions(sampleDocuments(), []model.DocumentType{{ID: 1, Name: "Memo"}, {ID: 2, Name: "Order"}}, time.UTC)
	assert.Equal(t, []string{"Memo", "Order"}, opts.KnownTypes)
	assert.Equal(t, []string{"draft", "published"}, opts.Statuses)

	aopts := AnnouncementFilterOptions(nil, time.UTC)
	assert.Equal(t, []string{"Visible to All", "Restricted"}, aopts.Visibilities)
	assert.Empty(t, aopts.Statuses)
	assert.Nil(t, aopts.Created)

	uopts := UserFilterOptions([]model.User{{Role: strp("admin")}, {Role: nil}, {Role: strp("admin")}}, time.UTC)
	assert.Equal(t, []string{"admin"}, uopts.Roles)

	nopts := NotificationFilterOptions([]model.Notification{{Type: strp("upload"), CreatedAt: at(2024, 1, 1, 0, 0)}}, time.UTC)
	assert.Equal(t, []string{"upload"}, nopts.Types)
	require.NotNil(t, nopts.Created)
	assert.Equal(t, day(2024, 1, 1), nopts.Created.From)
}
