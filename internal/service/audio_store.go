package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/lshigami/mockview/config"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LocalAudioRoute is where the HTTP layer serves recordings kept on local disk.
const LocalAudioRoute = "/audio"

// AudioStore keeps answer recordings and returns a URL the browser can play back.
type AudioStore interface {
	Save(ctx context.Context, sessionID string, index int, filename string, r io.Reader) (string, error)
}

// NewAudioStore uploads to Cloudinary when CLOUDINARY_URL is set and writes to disk otherwise.
func NewAudioStore(cfg *config.Config) (AudioStore, error) {
	if cfg.Audio.CloudinaryURL == "" {
		log.Warn().Str("dir", cfg.Audio.LocalDir).Msg("CLOUDINARY_URL is not set. Recordings are stored on local disk.")
		if err := os.MkdirAll(cfg.Audio.LocalDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create audio directory: %w", err)
		}
		return &localAudioStore{dir: cfg.Audio.LocalDir}, nil
	}
	cld, err := cloudinary.NewFromURL(cfg.Audio.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &cloudinaryAudioStore{cld: cld, folder: cfg.Audio.Folder}, nil
}

func recordingName(sessionID string, index int) string {
	return fmt.Sprintf("%s_q%d", sessionID, index+1)
}

type cloudinaryAudioStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func (s *cloudinaryAudioStore) Save(ctx context.Context, sessionID string, index int, filename string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     recordingName(sessionID, index),
		ResourceType: "video", // cloudinary files audio under video
	})
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Int("index", index).Msg("Failed to upload recording")
		return "", fmt.Errorf("upload recording: %v: %w", err, apperrors.ErrUpstream)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("upload recording: %s: %w", result.Error.Message, apperrors.ErrUpstream)
	}
	return result.SecureURL, nil
}

type localAudioStore struct {
	dir string
}

func (s *localAudioStore) Save(_ context.Context, sessionID string, index int, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".webm"
	}
	name := recordingName(sessionID, index) + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create recording file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write recording: %w", err)
	}
	return LocalAudioRoute + "/" + name, nil
}
