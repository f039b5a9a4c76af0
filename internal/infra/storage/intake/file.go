package intake

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

// FileRepository журнал заявок в файле, одна JSON-строка на заявку.
// Файл только дописывается, при открытии журнал читается в память.
type FileRepository struct {
	*MemoryRepository
	path string
}

type fileIntake struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	UserID    string    `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Issue     string    `json:"issue"`
	Doctor    string    `json:"doctor"`
	Address   string    `json:"address,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFileRepository открывает журнал по пути path. Отсутствующий файл означает пустой журнал.
func NewFileRepository(path string) (*FileRepository, error) {
	repo := &FileRepository{
		MemoryRepository: NewMemoryRepository(),
		path:             path,
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrPersist, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var fi fileIntake
		if err := json.Unmarshal(scanner.Bytes(), &fi); err != nil {
			return nil, fmt.Errorf("%w: decode %s line %d: %v", ErrPersist, path, line, err)
		}
		intake := fi.toDomain()
		repo.records = append(repo.records, &intake)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersist, path, err)
	}

	return repo, nil
}

// Append дописывает заявку в журнал, затем добавляет её в память
func (r *FileRepository) Append(ctx context.Context, intake *domain.PatientIntake) (*domain.PatientIntake, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkIntake(intake); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.writeLine(intake); err != nil {
		return nil, err
	}

	stored := *intake
	r.records = append(r.records, &stored)

	out := stored
	return &out, nil
}

func (r *FileRepository) writeLine(intake *domain.PatientIntake) error {
	payload, err := json.Marshal(fromDomain(intake))
	if err != nil {
		return fmt.Errorf("%w: encode intake %s: %v", ErrPersist, intake.ID, err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir %s: %v", ErrPersist, dir, err)
		}
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrPersist, r.path, err)
	}
	if _, err := f.Write(append(payload, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrPersist, r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrPersist, r.path, err)
	}
	return nil
}

func fromDomain(i *domain.PatientIntake) fileIntake {
	return fileIntake{
		ID:        i.ID,
		Kind:      string(i.Kind),
		UserID:    i.UserID,
		Name:      i.Name,
		Age:       i.Age,
		Issue:     i.Issue,
		Doctor:    i.Doctor,
		Address:   i.Address,
		Contact:   i.Contact,
		CreatedAt: i.CreatedAt,
	}
}

func (fi fileIntake) toDomain() domain.PatientIntake {
	return domain.PatientIntake{
		ID:        fi.ID,
		Kind:      domain.IntakeKind(fi.Kind),
		UserID:    fi.UserID,
		Name:      fi.Name,
		Age:       fi.Age,
		Issue:     fi.Issue,
		Doctor:    fi.Doctor,
		Address:   fi.Address,
		Contact:   fi.Contact,
		CreatedAt: fi.CreatedAt,
	}
}
