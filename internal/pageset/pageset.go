// Package pageset loads named lists of embeds from a directory and keeps the
// recently used ones in memory.
//
// A set named "rules" is read from rules.json or, failing that, from
// rules.msgpack. Both hold a list of Discord embed objects with the field
// names of the Discord API.
package pageset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"
	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ugorji/go/codec"
)

var ErrNotFound = errors.New("page set not found")

type format struct {
	ext    string
	handle codec.Handle
}

var (
	jsonHandle    codec.JsonHandle
	msgpackHandle codec.MsgpackHandle
)

// formats in lookup order.
var formats = []format{
	{ext: ".json", handle: &jsonHandle},
	{ext: ".msgpack", handle: &msgpackHandle},
}

var validate = validator.New()

type Store struct {
	dir   string
	cache *lru.Cache[string, []*discordgo.MessageEmbed]
}

// New returns a Store reading from dir and caching up to size sets.
func New(dir string, size int) (*Store, error) {
	cache, err := lru.New[string, []*discordgo.MessageEmbed](size)
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, cache: cache}, nil
}

// Get returns the embeds of the set name. Names holding slashes, backslashes
// or dots are rejected so they cannot leave the directory.
func (s *Store) Get(name string) ([]*discordgo.MessageEmbed, error) {
	if err := validate.Var(name, "required,max=64,excludesall=/\\.,printascii"); err != nil {
		return nil, fmt.Errorf("invalid page set name %q: %w", name, err)
	}
	if pages, ok := s.cache.Get(name); ok {
		return pages, nil
	}

	for _, f := range formats {
		data, err := os.ReadFile(filepath.Join(s.dir, name+f.ext))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		pages, err := Decode(data, f.handle)
		if err != nil {
			return nil, fmt.Errorf("page set %s%s: %w", name, f.ext, err)
		}
		s.cache.Add(name, pages)
		return pages, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Forget drops name from the cache, so the next Get reads it again.
func (s *Store) Forget(name string) {
	s.cache.Remove(name)
}

// Len returns the number of cached sets.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Decode decodes a list of embeds. Empty lists and null entries are
// rejected.
func Decode(data []byte, h codec.Handle) ([]*discordgo.MessageEmbed, error) {
	var pages []*discordgo.MessageEmbed
	if err := codec.NewDecoderBytes(data, h).Decode(&pages); err != nil {
		return nil, err
	}
	if err := validate.Var(pages, "required,min=1,dive,required"); err != nil {
		return nil, err
	}
	return pages, nil
}

// Encode encodes pages with h, the inverse of Decode.
func Encode(pages []*discordgo.MessageEmbed, h codec.Handle) ([]byte, error) {
	var buf []byte
	err := codec.NewEncoderBytes(&buf, h).Encode(pages)
	return buf, err
}

// JSON and Msgpack are the handles of the two file formats.
func JSON() codec.Handle    { return &jsonHandle }
func Msgpack() codec.Handle { return &msgpackHandle }
