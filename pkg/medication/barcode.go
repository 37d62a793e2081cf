package medication

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	barcodePrefix     = "MT"
	barcodeBaseLength = 8

	// Suffix attempts before giving up on the identifier-derived code.
	// Should never be reached in practice since the base comes from a
	// unique identifier.
	maxSuffixAttempts = 999

	// Save retries when the storage uniqueness constraint rejects a code
	// that passed the pre-check (two generators racing on the same base).
	maxSaveAttempts = 3
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// BarcodeBase derives the scannable code base from a record identifier: the
// last 8 characters, upper-cased. Identifiers shorter than 8 characters are
// used whole, unpadded.
func BarcodeBase(id string) string {
	if len(id) > barcodeBaseLength {
		id = id[len(id)-barcodeBaseLength:]
	}
	return strings.ToUpper(id)
}

// FallbackBarcode builds a code from the current timestamp plus two random
// base36 characters, for the pathological case where every suffixed
// candidate is taken.
func FallbackBarcode(now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return barcodePrefix + ts + randomBase36(2)
}

func randomBase36(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// a fixed character still yields a checked-unique code.
			b.WriteByte('0')
			continue
		}
		b.WriteByte(base36Alphabet[idx.Int64()])
	}
	return b.String()
}

// generateBarcodeCode walks the deterministic-then-randomized ladder: the
// identifier-derived candidate, then "-1", "-2", ... suffixes, re-checking
// persistence each step, and finally the timestamp fallback.
func (s *medicationService) generateBarcodeCode(ctx context.Context, med *entities.Medication) (string, error) {
	candidate := barcodePrefix + BarcodeBase(med.ID.String())

	for n := 0; n <= maxSuffixAttempts; n++ {
		code := candidate
		if n > 0 {
			code = fmt.Sprintf("%s-%d", candidate, n)
		}
		exists, err := s.medicationRepository.BarcodeExists(ctx, code, med.ID.String())
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return FallbackBarcode(s.clock.Now()), nil
}

// saveWithBarcode persists the medication with a generated code, regenerating
// when the storage uniqueness constraint catches a race the pre-check missed.
func (s *medicationService) saveWithBarcode(ctx context.Context, med *entities.Medication, save func(context.Context, *entities.Medication) error) error {
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		code, err := s.generateBarcodeCode(ctx, med)
		if err != nil {
			return err
		}
		med.BarcodeData = code

		err = save(ctx, med)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrBarcodeConflict) {
			return err
		}
	}
	return domain.ErrBarcodeGeneration
}
