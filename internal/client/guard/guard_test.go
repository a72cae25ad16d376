package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authdesk/internal/client/session"
)

type countingLoader struct {
	rec   session.Record
	ok    bool
	loads int
}

func (l *countingLoader) Load(context.Context) (session.Record, bool) {
	l.loads++
	return l.rec, l.ok
}

func TestResolve(t *testing.T) {
	authed := session.NewRecord(map[string]any{"name": "A"}, "T")
	tokenless := session.NewRecord(map[string]any{"name": "A"}, "")

	tests := []struct {
		name      string
		rec       session.Record
		ok        bool
		requested View
		want      View
	}{
		{"dashboard anonymous", session.Record{}, false, Dashboard, Home},
		{"profile anonymous", session.Record{}, false, Profile, Home},
		{"dashboard tokenless", tokenless, true, Dashboard, Home},
		{"dashboard authed", authed, true, Dashboard, Dashboard},
		{"profile authed", authed, true, Profile, Profile},
		{"home anonymous", session.Record{}, false, Home, Home},
		{"home authed", authed, true, Home, Dashboard},
		{"home tokenless", tokenless, true, Home, Home},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.rec, tt.ok, tt.requested)
			assert.Equal(t, tt.want, d.View)
			assert.Equal(t, tt.requested, d.Requested)
			assert.Equal(t, tt.want != tt.requested, d.Redirected())
		})
	}
}

func TestResolve_DropsRecordWhenNotAuthenticated(t *testing.T) {
	d := Resolve(session.NewRecord(map[string]any{"name": "A"}, ""), true, Dashboard)
	assert.Equal(t, session.Record{}, d.Record)
}

func TestGuard_LoadsOnEveryNavigation(t *testing.T) {
	l := &countingLoader{rec: session.NewRecord(nil, "T"), ok: true}
	g := New(l)
	ctx := context.Background()

	assert.Equal(t, Dashboard, g.Navigate(ctx, Dashboard).View)

	l.rec, l.ok = session.Record{}, false
	d := g.Navigate(ctx, Dashboard)
	assert.Equal(t, Home, d.View)
	assert.True(t, d.Redirected())
	assert.Equal(t, 2, l.loads)
}

func TestParseView(t *testing.T) {
	v, err := ParseView(" Dashboard ")
	require.NoError(t, err)
	assert.Equal(t, Dashboard, v)

	_, err = ParseView("admin")
	assert.Error(t, err)
}

func TestView_Protected(t *testing.T) {
	assert.False(t, Home.Protected())
	assert.True(t, Dashboard.Protected())
	assert.True(t, Profile.Protected())
}
