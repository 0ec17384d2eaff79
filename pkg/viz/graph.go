/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: graph.go
Description: DOT to JSON graph conversion for the Sentra visualization
front-end. Parses an exported automaton DOT file into node and edge records
that serialize directly to the shape the UI consumes.
*/

package viz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// GraphNode is one automaton state in the UI graph. Label is the first line
// of the DOT node label, without the count annotations.
type GraphNode struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IsAccepting bool   `json:"is_accepting"`
	IsStart     bool   `json:"is_start"`
}

// GraphEdge is one labeled transition in the UI graph.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Graph is the JSON shape consumed by the visualization front-end.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// LoadGraphFile parses an automaton DOT file into a Graph.
func LoadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOT file: %w", err)
	}
	defer f.Close()
	return LoadGraph(f)
}

// LoadGraph parses DOT content into a Graph. The __start edge marks the
// start node, doublecircle nodes are accepting, and the node label is cut at
// the first \n escape so state counts stay out of the UI label.
func LoadGraph(r io.Reader) (*Graph, error) {
	g := &Graph{}
	var startNode string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "__start ->"):
			target := strings.TrimSuffix(strings.TrimSpace(line[len("__start ->"):]), ";")
			startNode = strings.TrimSpace(target)

		case strings.Contains(line, "->"):
			if strings.HasPrefix(line, "__start") {
				continue
			}
			arrow := strings.Index(line, "->")
			bracket := strings.Index(line, "[")
			labelPos := strings.Index(line, `label="`)
			if bracket < 0 || labelPos < 0 {
				continue
			}
			labelRest := line[labelPos+len(`label="`):]
			end := strings.Index(labelRest, `"`)
			if end < 0 {
				continue
			}
			g.Edges = append(g.Edges, GraphEdge{
				Source: strings.TrimSpace(line[:arrow]),
				Target: strings.TrimSpace(line[arrow+2 : bracket]),
				Label:  labelRest[:end],
			})

		case strings.Contains(line, "[") && strings.Contains(line, "label="):
			if strings.HasPrefix(line, "__start") || strings.HasPrefix(line, "node [") {
				continue
			}
			id := strings.TrimSpace(line[:strings.Index(line, "[")])
			labelRest := line[strings.Index(line, `label="`)+len(`label="`):]
			end := strings.Index(labelRest, `"`)
			if end < 0 {
				continue
			}
			label := labelRest[:end]
			if cut := strings.Index(label, `\n`); cut >= 0 {
				label = label[:cut]
			}
			g.Nodes = append(g.Nodes, GraphNode{
				ID:          id,
				Label:       label,
				IsAccepting: strings.Contains(line, "doublecircle"),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read DOT: %w", err)
	}

	for i := range g.Nodes {
		g.Nodes[i].IsStart = g.Nodes[i].ID == startNode
	}
	return g, nil
}
