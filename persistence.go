package brainfuck

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// Persistence is the program library: named programs plus the runs and
// evaluations recorded against them, in a single SQLite file.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var pragmas strings.Builder
	pragma_count := len(config.SQLitePragmas) - 1
	for i, prag := range config.SQLitePragmas {
		pragmas.WriteString(fmt.Sprintf("_pragma=%s", prag))
		if i < pragma_count {
			pragmas.WriteRune('&')
		}
	}

	var options strings.Builder
	option_count := len(config.SQLiteOptions) - 1
	for i, opt := range config.SQLiteOptions {
		options.WriteString(opt)
		if i < option_count {
			options.WriteRune('&')
		}
	}

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if pragmas.Len() > 0 {
		path.WriteRune('?')
		path.WriteString(pragmas.String())
		if options.Len() > 0 {
			path.WriteRune('&')
			path.WriteString(options.String())
		}
	} else if options.Len() > 0 {
		path.WriteRune('?')
		path.WriteString(options.String())
	}

	db, err := gorm.Open(sqlite.Open(path.String()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	if err := p.DB.AutoMigrate(
		&Program{},
		&Run{},
		&Evaluation{},
	); err != nil {
		return err
	}

	return nil
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

func (p *Persistence) CreateProgram(prog *Program) (uint, error) {
	if prog == nil {
		return 0, fmt.Errorf("Program cannot be nil")
	}

	if result := p.DB.Create(prog); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return prog.ID, nil
}

func (p *Persistence) LoadProgram(name string) (*Program, error) {
	prog := &Program{}
	if result := p.DB.Where("name = ?", name).First(prog); result.Error != nil {
		return nil, fmt.Errorf("Failed to load program [%s]: %w", name, result.Error)
	}
	return prog, nil
}

func (p *Persistence) ListPrograms() ([]*Program, error) {
	var progs []*Program
	if result := p.DB.Order("name").Find(&progs); result.Error != nil {
		return nil, fmt.Errorf("Failed to list programs: %w", result.Error)
	}
	return progs, nil
}

func (p *Persistence) CreateRun(run *Run) (uint, error) {
	if run == nil {
		return 0, fmt.Errorf("Run cannot be nil")
	}

	if result := p.DB.Create(run); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return run.ID, nil
}

func (p *Persistence) LoadRuns(programID uint) ([]*Run, error) {
	var runs []*Run
	if result := p.DB.Where("program_id = ?", programID).Order("id").Find(&runs); result.Error != nil {
		return nil, fmt.Errorf("Failed to load runs for program [%d]: %w", programID, result.Error)
	}
	return runs, nil
}

func (p *Persistence) CreateEvaluation(eval *Evaluation) (uint, error) {
	if eval == nil {
		return 0, fmt.Errorf("Evaluation cannot be nil")
	}

	if result := p.DB.Create(eval); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return eval.ID, nil
}
