package wordfreq

import (
	"errors"

	"github.com/klimenkoOleg/top-words-go/internal/domain/topk"
)

var (
	ErrInvalidCapacity = topk.ErrInvalidCapacity
	ErrInputRead       = errors.New("input read failed")
	ErrUnknownFormat   = errors.New("unknown report format")
)
