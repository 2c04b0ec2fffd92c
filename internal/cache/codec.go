package cache

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/umalmyha/customer-notifier/internal/model"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/nacl/secretbox"
)

const sealKeySize = 32

// Codec encodes customer records for storage in the cache.
type Codec interface {
	Encode(rec *model.CustomerRecord) ([]byte, error)
	Decode(data []byte) (*model.CustomerRecord, error)
}

type msgpackCodec struct{}

func NewMsgpackCodec() Codec {
	return msgpackCodec{}
}

func (msgpackCodec) Encode(rec *model.CustomerRecord) ([]byte, error) {
	return msgpack.Marshal(rec)
}

func (msgpackCodec) Decode(data []byte) (*model.CustomerRecord, error) {
	var rec model.CustomerRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// sealedCodec seals the inner encoding with nacl/secretbox so cached customer
// data is encrypted at rest. The core's contract stays plaintext in/out.
type sealedCodec struct {
	key   [sealKeySize]byte
	inner Codec
}

func NewSealedCodec(key []byte, inner Codec) (Codec, error) {
	if len(key) != sealKeySize {
		return nil, fmt.Errorf("seal key must be %d bytes long, got %d", sealKeySize, len(key))
	}

	c := &sealedCodec{inner: inner}
	copy(c.key[:], key)
	return c, nil
}

func (c *sealedCodec) Encode(rec *model.CustomerRecord) ([]byte, error) {
	plain, err := c.inner.Encode(rec)
	if err != nil {
		return nil, err
	}

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], plain, &nonce, &c.key), nil
}

func (c *sealedCodec) Decode(data []byte) (*model.CustomerRecord, error) {
	if len(data) < 24 {
		return nil, errors.New("sealed record is truncated")
	}

	var nonce [24]byte
	copy(nonce[:], data[:24])

	plain, ok := secretbox.Open(nil, data[24:], &nonce, &c.key)
	if !ok {
		return nil, errors.New("failed to open sealed record, wrong key or corrupted data")
	}
	return c.inner.Decode(plain)
}
