package state

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jkhopkins39/sxnctuary/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseImageStoreDefaults(t *testing.T) {
	s := NewReleaseImageStore(&fakeAPI{}, nil)
	assert.Equal(t, "/IMG_3220.jpg", s.URL())
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestReleaseImageStoreLoad(t *testing.T) {
	t.Run("picks its key out of the content rows", func(t *testing.T) {
		api := &fakeAPI{contents: []client.Content{
			{ID: "hero-title", Value: "SXNCTUARY"},
			{ID: "latest-release-image", Value: "https://cdn/cover.jpg"},
		}}
		s := NewReleaseImageStore(api, nil)
		s.Load(context.Background())

		assert.Equal(t, PhaseReady, s.Phase())
		assert.Equal(t, "https://cdn/cover.jpg", s.URL())
	})

	t.Run("empty stored value keeps the default", func(t *testing.T) {
		api := &fakeAPI{contents: []client.Content{{ID: "latest-release-image", Value: ""}}}
		s := NewReleaseImageStore(api, nil)
		s.Load(context.Background())

		assert.Equal(t, "/IMG_3220.jpg", s.URL())
	})

	t.Run("fetch failure seeds and retries", func(t *testing.T) {
		api := &fakeAPI{
			listErr:   errors.New("down"),
			healAfter: 1,
			contents:  []client.Content{{ID: "latest-release-image", Value: "/seeded.jpg"}},
		}
		s := NewReleaseImageStore(api, nil)
		s.Load(context.Background())

		assert.Equal(t, 1, api.seedCalls)
		assert.Equal(t, "/seeded.jpg", s.URL())
	})

	t.Run("total failure keeps the default and reaches ready", func(t *testing.T) {
		api := &fakeAPI{listErr: errors.New("down")}
		s := NewReleaseImageStore(api, nil)
		s.Load(context.Background())

		assert.Equal(t, PhaseReady, s.Phase())
		assert.Equal(t, "/IMG_3220.jpg", s.URL())
	})
}

func TestReleaseImageStoreUpdateImage(t *testing.T) {
	t.Run("persists under the shared content key", func(t *testing.T) {
		api := &fakeAPI{}
		s := NewReleaseImageStore(api, nil)

		require.NoError(t, s.UpdateImage(context.Background(), "https://cdn/new.jpg"))
		assert.Equal(t, "https://cdn/new.jpg", s.URL())
		require.Len(t, api.upserts, 1)
		assert.Equal(t, "latest-release-image", api.upserts[0].ID)
	})

	t.Run("rejection leaves the current image", func(t *testing.T) {
		api := &fakeAPI{upsertErr: errors.New("boom")}
		s := NewReleaseImageStore(api, nil)

		require.Error(t, s.UpdateImage(context.Background(), "https://cdn/new.jpg"))
		assert.Equal(t, "/IMG_3220.jpg", s.URL())
	})
}

func TestReleaseImageStoreUploadImage(t *testing.T) {
	t.Run("first hosted URL becomes the image", func(t *testing.T) {
		api := &fakeAPI{uploadURLs: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}}
		s := NewReleaseImageStore(api, nil)

		url, err := s.UploadImage(context.Background(), client.UploadFile{
			Name: "a.jpg", Reader: strings.NewReader("aaa"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/a.jpg", url)
		assert.Equal(t, "https://cdn/a.jpg", s.URL())
	})

	t.Run("upload failure changes nothing", func(t *testing.T) {
		api := &fakeAPI{uploadErr: errors.New("host down")}
		s := NewReleaseImageStore(api, nil)

		_, err := s.UploadImage(context.Background(), client.UploadFile{
			Name: "a.jpg", Reader: strings.NewReader("aaa"),
		})
		require.Error(t, err)
		assert.Equal(t, "/IMG_3220.jpg", s.URL())
		assert.Empty(t, api.upserts)
	})
}
