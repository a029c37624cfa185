package qrencode

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image/color"

	"brewzzy/internal/domain/booking"
	"brewzzy/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

const dataURIPrefix = "data:image/png;base64,"

// Payload is the structured content embedded in a booking QR code. Field names
// are part of the scan contract and must not change.
type Payload struct {
	BookingID string `json:"bookingId"`
	Cafe      string `json:"cafe"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Guests    string `json:"guests"`
	Name      string `json:"name"`
}

// Encoder renders booking payloads as dark-on-light PNG QR codes, returned as
// data URIs sized for inline display.
type Encoder struct {
	size int
}

func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = 200
	}
	return &Encoder{size: size}
}

func (e *Encoder) Encode(ctx context.Context, p Payload) (booking.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return booking.EmptyArtifact, err
	}

	content, err := json.Marshal(p)
	if err != nil {
		return booking.EmptyArtifact, errs.Wrap(err, "failed to serialize QR payload")
	}

	q, err := qrcode.New(string(content), qrcode.Medium)
	if err != nil {
		return booking.EmptyArtifact, errs.Wrap(err, "failed to build QR code")
	}
	q.ForegroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	q.BackgroundColor = color.White

	png, err := q.PNG(e.size)
	if err != nil {
		return booking.EmptyArtifact, errs.Wrap(err, "failed to render QR PNG")
	}

	return booking.Artifact(dataURIPrefix + base64.StdEncoding.EncodeToString(png)), nil
}

// DecodePNG extracts the raw PNG bytes from an artifact data URI for file
// export.
func DecodePNG(a booking.Artifact) ([]byte, error) {
	s := a.String()
	if len(s) <= len(dataURIPrefix) || s[:len(dataURIPrefix)] != dataURIPrefix {
		return nil, errs.New("artifact is not a PNG data URI")
	}
	return base64.StdEncoding.DecodeString(s[len(dataURIPrefix):])
}
