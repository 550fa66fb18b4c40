// Package source loads OBJ documents from disk and writes them back,
// handling charsets and logging around the parser.
package source

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/pkg/encoding"
	"github.com/Faultbox/objkit/pkg/obj"
)

// Document is a parsed file.
type Document struct {
	Path     string
	Charset  string
	Set      *obj.ObjectSet
	Problems []obj.IndexProblem // only filled when validation is enabled
}

// Load reads and parses the file at path.
func Load(path string, cfg config.InputConfig) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data, cfg)
}

// Parse decodes and parses data read from path.
func Parse(path string, data []byte, cfg config.InputConfig) (*Document, error) {
	log := logger.Named("source")

	text, err := encoding.Decode(data, cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	charset := cfg.Encoding
	if charset == "" || charset == encoding.Auto {
		charset = encoding.Detect(data)
	}

	start := time.Now()
	set, err := obj.Parse(text)
	if err != nil {
		log.Debug("parse failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc := &Document{Path: path, Charset: charset, Set: set}
	if cfg.Validate {
		doc.Problems = obj.Validate(set)
	}

	log.Debug("parsed",
		zap.String("path", path),
		zap.String("charset", charset),
		zap.Int("bytes", len(data)),
		zap.Int("objects", set.Len()),
		zap.Int("problems", len(doc.Problems)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return doc, nil
}

// Compositor builds the compositor described by cfg.
func Compositor(cfg config.OutputConfig) obj.Compositor {
	return obj.Compositor{Fold: cfg.Fold, Header: cfg.Header}
}

// Render composes set and encodes it in the configured charset.
func Render(set *obj.ObjectSet, cfg config.OutputConfig) ([]byte, error) {
	text := Compositor(cfg).Compose(set)
	data, err := encoding.Encode(text, cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("encoding output: %w", err)
	}
	return data, nil
}

// Write composes set into the file at path.
func Write(path string, set *obj.ObjectSet, cfg config.OutputConfig) error {
	data, err := Render(set, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Named("source").Debug("wrote", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
