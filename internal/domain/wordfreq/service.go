package wordfreq

import (
	"context"
	"errors"
	"fmt"
)

//go:generate go run github.com/vektra/mockery/v2@v2.43.2 --all

type Storage interface {
	OpenInputFile(name string) (InputFile, error)
	CreateOutputFile(name string) (OutputFile, error)
}

type InputFile interface {
	LineSource
	Close() error
}

type OutputFile interface {
	Close() error
	Write(line string) error
}

type Service struct {
	storage Storage
	opts    []Option
}

func NewService(storage Storage, opts ...Option) *Service {
	return &Service{
		storage: storage,
		opts:    opts,
	}
}

// Analyze finds the k most frequent words of at least minimumLength
// characters in the named file. In best-effort mode a read failure returns
// the partial result together with the error.
func (s *Service) Analyze(ctx context.Context, inputFileName string, k, minimumLength int) (res *Result, err error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got k=%d", ErrInvalidCapacity, k)
	}

	inputFile, err := s.storage.OpenInputFile(inputFileName)
	if err != nil {
		return nil, fmt.Errorf("%w: open input file failed, error=%w", ErrInputRead, err)
	}
	defer func() {
		if closeErr := inputFile.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close input, err=%w", closeErr))
		}
	}()

	res, err = FindTopKWithMinLength(ctx, inputFile, k, minimumLength, s.opts...)
	if err != nil {
		return res, fmt.Errorf("analyze %s failed, error=%w", inputFileName, err)
	}

	return res, nil
}

// Export writes the ranked result to a file created through the storage.
func (s *Service) Export(ctx context.Context, res *Result, outputFileName string, format Format) (err error) {
	lines, err := encodeReport(res, format)
	if err != nil {
		return fmt.Errorf("encode report failed, error=%w", err)
	}

	writer, err := s.storage.CreateOutputFile(outputFileName)
	if err != nil {
		return fmt.Errorf("create output file failed, error=%w", err)
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close output file failed, err=%w", closeErr))
		}
	}()

	for _, line := range lines {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled, error if any=%w", ctx.Err())
		default:
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("output file write line failed, error=%w", err)
		}
	}

	return nil
}
