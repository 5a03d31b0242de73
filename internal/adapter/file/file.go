package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	wordFreqDomain "github.com/klimenkoOleg/top-words-go/internal/domain/wordfreq"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

const defaultMaxLineSize = 1024 * 1024

type StorageImpl struct {
	encoding    string
	maxLineSize int
	progress    io.Writer
}

type StorageOption func(*StorageImpl)

// WithEncoding sets the charset input files are decoded from. Names follow
// the WHATWG encoding labels ("utf-8", "utf-16le", "latin1", "windows-1252").
func WithEncoding(name string) StorageOption {
	return func(s *StorageImpl) {
		s.encoding = name
	}
}

// WithMaxLineSize raises the longest line the scanner accepts.
func WithMaxLineSize(n int) StorageOption {
	return func(s *StorageImpl) {
		if n > 0 {
			s.maxLineSize = n
		}
	}
}

// WithProgress draws a progress bar of bytes read to w.
func WithProgress(w io.Writer) StorageOption {
	return func(s *StorageImpl) {
		s.progress = w
	}
}

func NewStorage(opts ...StorageOption) *StorageImpl {
	s := &StorageImpl{maxLineSize: defaultMaxLineSize}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *StorageImpl) OpenInputFile(name string) (wordFreqDomain.InputFile, error) {
	return newInputFile(name, s)
}

func (s *StorageImpl) CreateOutputFile(name string) (wordFreqDomain.OutputFile, error) {
	return newOutputFile(name)
}

// lookupEncoding returns nil for UTF-8, which needs no decoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}

	return enc, nil
}

type InputFileImpl struct {
	inputFile    *os.File
	inputScanner *bufio.Scanner
	bar          *pb.ProgressBar
}

func newInputFile(name string, s *StorageImpl) (*InputFileImpl, error) {
	enc, err := lookupEncoding(s.encoding)
	if err != nil {
		return nil, fmt.Errorf("newInputFile failed, error=%w", err)
	}

	inputFile, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("newInputFile failed, error=%w", err)
	}

	var (
		r   io.Reader = inputFile
		bar *pb.ProgressBar
	)
	if s.progress != nil {
		stat, err := inputFile.Stat()
		if err != nil {
			return nil, errors.Join(fmt.Errorf("stat input file failed, error=%w", err), inputFile.Close())
		}
		bar = pb.New64(stat.Size())
		bar.Set(pb.Bytes, true)
		bar.SetWriter(s.progress)
		bar.Start()
		r = bar.NewProxyReader(r)
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	// the scanner's limit is the larger of max and the initial buffer
	bufSize := min(64*1024, s.maxLineSize)
	inputScanner := bufio.NewScanner(r)
	inputScanner.Buffer(make([]byte, 0, bufSize), s.maxLineSize)

	return &InputFileImpl{
		inputFile:    inputFile,
		inputScanner: inputScanner,
		bar:          bar,
	}, nil
}

func (s *InputFileImpl) Close() error {
	if s.bar != nil {
		s.bar.Finish()
	}
	return s.inputFile.Close()
}

func (s *InputFileImpl) Scan() bool {
	return s.inputScanner.Scan()
}

func (s *InputFileImpl) ReadLine() string {
	return s.inputScanner.Text()
}

func (s *InputFileImpl) Err() error {
	return s.inputScanner.Err()
}

type OutputFileImpl struct {
	file   *os.File
	writer *bufio.Writer
}

func newOutputFile(fileName string) (*OutputFileImpl, error) {
	file, err := os.Create(fileName)
	if err != nil {
		return nil, fmt.Errorf("newOutputFile failed, error=%w", err)
	}

	return &OutputFileImpl{
			file:   file,
			writer: bufio.NewWriter(file),
		},
		nil
}

func (s *OutputFileImpl) Close() error {
	flushErr := s.writer.Flush()
	closeErr := s.file.Close()

	return errors.Join(flushErr, closeErr)
}

func (s *OutputFileImpl) Write(line string) error {
	_, err := s.writer.WriteString(line)
	if err != nil {
		return fmt.Errorf("write to file failed, error=%w", err)
	}

	return nil
}
