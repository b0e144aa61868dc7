package supercombo

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"sf6framedata/lib/htmlutil"
	"sf6framedata/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("scrapers/supercombo")

const DefaultBaseUrl = "https://wiki.supercombo.gg"

const defaultImage = "https://wiki.supercombo.gg/images/thumb/4/42/SF6_Logo.png/300px-SF6_Logo.png"

// one section per move: the h5 holds the identifier span, the
// wikitable right after it holds everything else
const moveNameSelector = "div > div > section.section-collapsible > h5 > span"
const moveTableSelector = "div > div > section.section-collapsible > h5 + table.wikitable"

const inputSelector = "tr > th > div > p > span"
const nameSelector = "tr > th > div > div"
const hitboxImageElementSelector = "tr > th > a"
const dataCellSelector = "tr > td"

var hitboxImageUrlRegex = regexp.MustCompile(`(/images/thumb\S+) 2x`)

const missingField = "-"

type Client struct {
	http    *resty.Client
	baseUrl string
}

type ClientOptions struct {
	// origin of the wiki, defaults to DefaultBaseUrl
	BaseUrl string
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	// image paths are joined onto the origin, which must not end in "/"
	baseUrl = strings.TrimRight(baseUrl, "/")

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/supercombo/http")

	return Client{
		http:    client,
		baseUrl: baseUrl,
	}
}

// Load fetches and parses one character's frame data page.
func (c Client) Load(ctx context.Context, character CharacterId) (CharacterFrameData, error) {
	ctx, span := tracer.Start(ctx, "client:Load")
	defer span.End()
	span.SetAttributes(attribute.String("character", character.Id))

	res, err := c.http.R().
		SetContext(ctx).
		Get(character.FrameDataPath())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return CharacterFrameData{}, err
	}
	if res.IsError() {
		err := fmt.Errorf("fetch frame data page for %q: %s", character.Id, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "bad response status")
		return CharacterFrameData{}, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return CharacterFrameData{}, err
	}

	names := selectMoveNames(doc)
	tables := selectMoveTables(doc)
	if len(names) != len(tables) {
		slog.DebugContext(
			ctx,
			"move name and table counts differ",
			"character", character.Id,
			"names", len(names),
			"tables", len(tables),
		)
	}

	var moves []Move
	for i := 0; i < len(names) && i < len(tables); i++ {
		move, ok := c.parseMove(names[i], tables[i])
		if !ok {
			continue
		}
		moves = append(moves, move)
	}

	slog.DebugContext(ctx, "loaded frame data", "character", character.Id, "moves", len(moves))
	return CharacterFrameData{
		CharacterId: character,
		Moves:       moves,
	}, nil
}

// LoadAll loads every roster entry concurrently. Characters whose load
// fails are logged and left out of the catalog, the rest still make it
// in.
func (c Client) LoadAll(ctx context.Context, roster []CharacterId) FrameData {
	ctx, span := tracer.Start(ctx, "client:LoadAll")
	defer span.End()

	var out FrameData
	lock := sync.Mutex{}
	wg := sync.WaitGroup{}

	for _, character := range roster {
		wg.Add(1)
		go func(character CharacterId) {
			defer wg.Done()

			data, err := c.Load(ctx, character)
			if err != nil {
				slog.WarnContext(
					ctx,
					"failed to load character frame data",
					"character", character.Id,
					"err", err,
				)
				return
			}

			lock.Lock()
			defer lock.Unlock()
			out.Characters = append(out.Characters, data)
		}(character)
	}

	wg.Wait()
	return out
}

func selectMoveNames(doc *goquery.Document) []*html.Node {
	var out []*html.Node
	for _, node := range doc.Find(moveNameSelector).Nodes {
		if strings.TrimSpace(htmlutil.GetText(node)) == "" {
			continue
		}
		out = append(out, node)
	}
	return out
}

func selectMoveTables(doc *goquery.Document) []*goquery.Selection {
	var out []*goquery.Selection
	doc.Find(moveTableSelector).Each(func(_ int, table *goquery.Selection) {
		out = append(out, table)
	})
	return out
}

// parseMove extracts one Move from its name anchor and data table. A
// block without an input or name cell is not a move, reported via the
// second return.
func (c Client) parseMove(name *html.Node, table *goquery.Selection) (Move, bool) {
	input := table.Find(inputSelector).First()
	if input.Length() == 0 {
		return Move{}, false
	}
	title := table.Find(nameSelector).First()
	if title.Length() == 0 {
		return Move{}, false
	}

	move := Move{
		Identifier: htmlutil.GetText(name),
		Input:      input.Text(),
		Name:       title.Text(),
		ImageLink:  c.hitboxImage(table),
	}

	var cells []string
	table.Find(dataCellSelector).Each(func(_ int, cell *goquery.Selection) {
		leaf := htmlutil.LowestChild(cell)
		cells = append(cells, htmlutil.InnerHtml(leaf))
	})

	stats := move.statFields()
	for i := range stats {
		if i < len(cells) {
			*stats[i] = cells[i]
		} else {
			*stats[i] = missingField
		}
	}

	return move, true
}

// hitboxImage picks the move's diagram image out of the table header.
// The second anchor is preferred: the first is usually a generic input
// icon, the second the actual hitbox diagram.
func (c Client) hitboxImage(table *goquery.Selection) string {
	var icon, hitbox string
	table.Find(hitboxImageElementSelector).EachWithBreak(func(i int, anchor *goquery.Selection) bool {
		markup, err := goquery.OuterHtml(anchor)
		if err == nil {
			match := hitboxImageUrlRegex.FindStringSubmatch(markup)
			if match != nil {
				if i == 0 {
					icon = match[1]
				} else {
					hitbox = match[1]
				}
			}
		}
		return i < 1
	})

	path := hitbox
	if path == "" {
		path = icon
	}
	if path == "" {
		return defaultImage
	}
	return c.baseUrl + path
}
