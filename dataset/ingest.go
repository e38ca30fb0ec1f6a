package dataset

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultURL is the Our World in Data energy dataset.
const DefaultURL = "https://raw.githubusercontent.com/owid/energy-data/master/owid-energy-data.csv"

// Fetcher downloads the dataset to a local file.
type Fetcher struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client
	URL    string
	Path   string
	// Progress receives a byte progress bar when not nil.
	Progress io.Writer
}

// NewFetcher creates a Fetcher for url and path.
func NewFetcher(url, path string) *Fetcher {
	return &Fetcher{URL: url, Path: path}
}

// Fetch performs one GET request and stores the body at Path. It returns
// the number of bytes written. A partial file is removed on failure.
func (f *Fetcher) Fetch(ctx context.Context) (int64, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	slog.Info("Downloading dataset", "url", f.URL, "path", f.Path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return 0, DownloadError(f.URL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, DownloadError(f.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, DownloadStatusError(f.URL, resp.StatusCode)
	}

	if err = os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return 0, WriteFileError(f.Path, err)
	}

	tmp := f.Path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return 0, WriteFileError(tmp, err)
	}

	var body io.Reader = resp.Body
	var bar *pb.ProgressBar
	if f.Progress != nil {
		bar = pb.Full.New(int(max(resp.ContentLength, 0)))
		bar.Set(pb.Bytes, true)
		bar.Set("prefix", "dataset ")
		bar.Set(pb.CleanOnFinish, true)
		bar.SetWriter(f.Progress)
		bar.Start()
		body = bar.NewProxyReader(resp.Body)
	}

	n, err := io.Copy(out, body)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		out.Close()
		os.Remove(tmp)
		return 0, DownloadError(f.URL, err)
	}
	if err = out.Close(); err != nil {
		os.Remove(tmp)
		return 0, WriteFileError(tmp, err)
	}
	if err = os.Rename(tmp, f.Path); err != nil {
		os.Remove(tmp)
		return 0, WriteFileError(f.Path, err)
	}

	slog.Info("Dataset downloaded",
		"path", f.Path,
		"size", humanize.Bytes(uint64(n)),
	)
	return n, nil
}

// Raw is the downloaded CSV before cleaning.
type Raw struct {
	df dataframe.DataFrame
}

// loadTypes fixes the types of the columns of interest. Other columns
// stay strings.
var loadTypes = map[string]series.Type{
	ColCountry:    series.String,
	ColYear:       series.Int,
	ColGDP:        series.Float,
	ColRenewables: series.Float,
	ColFossil:     series.Float,
}

// Load reads the dataset from path.
func Load(path string) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	raw, err := loadReader(f, path)
	if err != nil {
		return nil, err
	}
	rows, cols := raw.Dims()
	slog.Info("Dataset loaded",
		"path", path,
		"rows", humanize.Comma(int64(rows)),
		"columns", cols,
	)
	return raw, nil
}

// LoadReader reads the dataset from r.
func LoadReader(r io.Reader) (*Raw, error) {
	return loadReader(r, "reader")
}

func loadReader(r io.Reader, source string) (*Raw, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(loadTypes),
		dataframe.NaNValues([]string{"", "NA", "NaN", "nan"}),
	)
	if df.Err != nil {
		return nil, ParseCSVError(source, df.Err)
	}
	return &Raw{df: df}, nil
}

// NewRaw wraps an existing data frame.
func NewRaw(df dataframe.DataFrame) *Raw {
	return &Raw{df: df.Copy()}
}

// Dims returns the number of rows and columns.
func (r *Raw) Dims() (int, int) {
	return r.df.Dims()
}

// Names returns the column names.
func (r *Raw) Names() []string {
	return r.df.Names()
}

// Head renders the first n rows.
func (r *Raw) Head(n int) string {
	rows := r.df.Nrow()
	n = min(max(n, 0), rows)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return r.df.Subset(idx).String()
}
