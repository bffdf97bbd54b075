package ast

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Program struct {
	Loc        *Loc
	Statements []*Node
}

func (p *Program) String() string {
	var out strings.Builder
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

type Loc struct {
	Name string
	Dir  string
	Path string
}

func LocFromPath(fullPath string) (*Loc, error) {
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", fullPath)
	}

	loc := new(Loc)
	loc.Path = fullPath
	loc.Name = filepath.Base(fullPath)
	loc.Dir = filepath.Base(filepath.Dir(fullPath))
	return loc, nil
}
