package xsbio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/woodgrain/sokoban/game"
)

// ErrLevelNotFound is returned by the collection lookups.
var ErrLevelNotFound = errors.New("level not found")

// Matches "Level: <title>" headers, with an optional "| ..." suffix that
// some collections use to append a solution.
var reTitle = regexp.MustCompile(`(?i)^Level:\s*(.+?)(?:\s*\|.*)?$`)

// LevelInfo is one level from a collection, with its metadata.
type LevelInfo struct {
	Title string
	Index int
	Game  *game.Game
}

// LoadLevel starts a game from a level string, auto-detecting whether it is
// RLE or plain XSB.
func LoadLevel(levelText string) (*game.Game, error) {
	normalized := normalizeLevelText(levelText)
	if IsRLE(normalized) {
		normalized = DecodeRLE(normalized)
	}
	normalized = convertFloorChars(normalized)
	return game.NewGame(normalized)
}

// LoadFile loads a single level from a file.
func LoadFile(path string) (*game.Game, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadLevel(string(content))
}

// LoadCollection loads every level in a collection file, with titles taken
// from "Level: <title>" headers. Untitled levels get "<collection> N" from
// the filename and their 1-based position.
func LoadCollection(path string) ([]LevelInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	levels := parseCollection(string(content), name)
	log.Debug().Str("collection", name).Int("levels", len(levels)).Msg("loaded level collection")
	return levels, nil
}

// LoadLevels parses every level out of a collection string.
func LoadLevels(content string) []LevelInfo {
	return parseCollection(content, "")
}

// LevelByIndex loads the 0-based index'th level of a collection file.
func LevelByIndex(path string, index int) (LevelInfo, error) {
	levels, err := LoadCollection(path)
	if err != nil {
		return LevelInfo{}, err
	}
	if index < 0 || index >= len(levels) {
		return LevelInfo{}, fmt.Errorf("%w: index %d out of range (collection has %d levels)",
			ErrLevelNotFound, index, len(levels))
	}
	return levels[index], nil
}

// LevelByTitle loads the first level whose title matches, ignoring case.
func LevelByTitle(path string, title string) (LevelInfo, error) {
	levels, err := LoadCollection(path)
	if err != nil {
		return LevelInfo{}, err
	}
	for _, info := range levels {
		if strings.EqualFold(info.Title, title) {
			return info, nil
		}
	}
	available := lo.Map(levels, func(info LevelInfo, _ int) string { return info.Title })
	return LevelInfo{}, fmt.Errorf("%w: no level titled %q; available: %v",
		ErrLevelNotFound, title, available)
}

// SaveLevel renders a game's current state (not its initial state) as a
// level string, RLE encoded on request.
func SaveLevel(g *game.Game, useRLE bool) string {
	text := gameToLevelText(g)
	if useRLE {
		return EncodeRLE(text)
	}
	return text
}

// SaveLevelFile writes SaveLevel output to a file.
func SaveLevelFile(g *game.Game, path string, useRLE bool) error {
	return os.WriteFile(path, []byte(SaveLevel(g, useRLE)), 0644)
}

func parseCollection(content string, collectionName string) []LevelInfo {
	var results []LevelInfo
	var block []string
	var title string

	flush := func() {
		if len(block) == 0 {
			return
		}
		appendLevel(&results, block, title, collectionName)
		block = nil
		title = ""
	}

	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if isLevelLine(stripped) {
			block = append(block, line)
			continue
		}
		flush()
		if m := reTitle.FindStringSubmatch(stripped); m != nil {
			title = strings.TrimSpace(m[1])
		}
	}
	flush()

	return results
}

func appendLevel(results *[]LevelInfo, lines []string, title, collectionName string) {
	g, err := LoadLevel(strings.Join(lines, "\n"))
	if err != nil {
		// Blocks that look like levels but fail to parse are skipped, not
		// fatal: collection files carry all kinds of decoration.
		log.Debug().Err(err).Msg("skipping unparseable level block")
		return
	}
	index := len(*results)
	switch {
	case title != "":
	case collectionName != "":
		title = fmt.Sprintf("%s %d", collectionName, index+1)
	default:
		title = fmt.Sprintf("Level %d", index+1)
	}
	*results = append(*results, LevelInfo{Title: title, Index: index, Game: g})
}

func normalizeLevelText(levelText string) string {
	s := strings.ReplaceAll(levelText, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Trim(s, "\n")
}

func convertFloorChars(levelText string) string {
	s := strings.ReplaceAll(levelText, "-", " ")
	return strings.ReplaceAll(s, "_", " ")
}

// isLevelLine decides whether a collection-file line belongs to a level
// block: it must contain a wall or RLE row separator and consist mostly of
// level characters.
func isLevelLine(line string) bool {
	if line == "" {
		return false
	}
	if !strings.ContainsAny(line, "#|") {
		return false
	}
	count := 0
	for _, c := range line {
		if strings.ContainsRune("#@+$*. -_|B&X", c) || (c >= '0' && c <= '9') {
			count++
		}
	}
	return count*2 > len(line)
}

func gameToLevelText(g *game.Game) string {
	rows := make([]string, g.Height())
	for row := 0; row < g.Height(); row++ {
		var sb strings.Builder
		for col := 0; col < g.Width(); col++ {
			sb.WriteByte(cellChar(g, row, col))
		}
		rows[row] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func cellChar(g *game.Game, row, col int) byte {
	isGoal := g.IsGoal(row, col)
	switch {
	case g.IsWall(row, col):
		return '#'
	case g.IsPlayer(row, col) && isGoal:
		return '+'
	case g.IsPlayer(row, col):
		return '@'
	case g.IsBox(row, col) && isGoal:
		return '*'
	case g.IsBox(row, col):
		return '$'
	case isGoal:
		return '.'
	}
	return ' '
}
