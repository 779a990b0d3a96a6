package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/domains/content/repository"
	"paintpro-backend/internal/shared/apperror"
)

func newFileBackedService(t *testing.T) content.Service {
	t.Helper()
	return NewContentService(repository.NewFileRepository(t.TempDir()))
}

func validHero() map[string]interface{} {
	return map[string]interface{}{
		"location":    map[string]interface{}{"text": "Serving Portland"},
		"mainHeading": map[string]interface{}{"line1": "Quality Painting.", "line2": "Lasting Results."},
		"subheading":  "Done right, on time.",
		"buttons": map[string]interface{}{
			"primary":   map[string]interface{}{"text": "Get a Quote", "link": "/contact"},
			"secondary": map[string]interface{}{"text": "Our Work", "link": "/projects"},
		},
		"videoUrl": "/static/media/hero.mp4",
	}
}

func TestGetUnwrittenSectionReturnsNotFound(t *testing.T) {
	svc := newFileBackedService(t)

	_, err := svc.Get(context.Background(), content.SectionHero)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateThenGetRoundTrips(t *testing.T) {
	svc := newFileBackedService(t)
	body, err := json.Marshal(validHero())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), content.SectionHero, body)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), content.SectionHero)
	require.NoError(t, err)
	assert.JSONEq(t, string(updated.Payload), string(got.Payload))

	var hero content.HeroContent
	require.NoError(t, json.Unmarshal(got.Payload, &hero))
	assert.Equal(t, "Serving Portland", hero.Location.Text)
	assert.Equal(t, "/projects", hero.Buttons.Secondary.Link)
}

func TestUpdateMissingNestedFieldRejectedBeforeWrite(t *testing.T) {
	svc := newFileBackedService(t)

	seed, err := json.Marshal(validHero())
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), content.SectionHero, seed)
	require.NoError(t, err)

	bad := validHero()
	bad["buttons"].(map[string]interface{})["secondary"] = map[string]interface{}{"text": "Our Work"}
	body, err := json.Marshal(bad)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), content.SectionHero, body)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	// The rejected write must leave the stored content untouched.
	got, err := svc.Get(context.Background(), content.SectionHero)
	require.NoError(t, err)
	assert.JSONEq(t, string(seed), string(got.Payload))
}

func TestUpdateMalformedJSONRejected(t *testing.T) {
	svc := newFileBackedService(t)

	_, err := svc.Update(context.Background(), content.SectionHero, []byte(`{"location":`))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateDropsUnknownFields(t *testing.T) {
	svc := newFileBackedService(t)

	payload := validHero()
	payload["unknownField"] = "should not persist"
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), content.SectionHero, body)
	require.NoError(t, err)
	assert.NotContains(t, string(updated.Payload), "unknownField")
}

func TestSectionsAreIndependent(t *testing.T) {
	svc := newFileBackedService(t)

	contact := map[string]interface{}{
		"phone":   "(503) 555-0147",
		"email":   "hello@example.com",
		"address": "412 NW Industrial Way",
		"hours":   "Mon-Fri 8-6",
	}
	body, err := json.Marshal(contact)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), content.SectionContact, body)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), content.SectionHero)
	assert.True(t, apperror.IsNotFound(err))
}
