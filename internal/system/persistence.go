// internal/system/persistence.go
package system

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
)

const progressKey = "progress"

// ItemStore — хранилище именованных записей. *gdata.Manager подходит без обёрток.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedProgress — то, что переживает перезапуск игры.
type SavedProgress struct {
	BestWave    int `json:"bestWave"`
	GamesPlayed int `json:"gamesPlayed"`
}

// ProgressStore читает и пишет прогресс. Без хранилища работает как пустое.
type ProgressStore struct {
	store ItemStore
	log   zerolog.Logger
}

// OpenProgressStore открывает данные приложения через gdata.
// Если хранилище недоступно, возвращает рабочий ProgressStore без сохранения и ошибку.
func OpenProgressStore(appName string, log zerolog.Logger) (*ProgressStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("persistence disabled")
		return NewProgressStore(nil, log), fmt.Errorf("failed to open save data: %w", err)
	}
	return NewProgressStore(m, log), nil
}

func NewProgressStore(store ItemStore, log zerolog.Logger) *ProgressStore {
	return &ProgressStore{store: store, log: log}
}

// Load возвращает сохранённый прогресс или нулевой, если сохранений нет.
func (p *ProgressStore) Load() (SavedProgress, error) {
	var progress SavedProgress
	if p.store == nil {
		return progress, nil
	}
	data, err := p.store.LoadItem(progressKey)
	if err != nil {
		return progress, fmt.Errorf("failed to load progress: %w", err)
	}
	if len(data) == 0 {
		return progress, nil
	}
	if err := json.Unmarshal(data, &progress); err != nil {
		return SavedProgress{}, fmt.Errorf("failed to parse progress: %w", err)
	}
	return progress, nil
}

func (p *ProgressStore) Save(progress SavedProgress) error {
	if p.store == nil {
		return nil
	}
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}
	if err := p.store.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// RecordGame учитывает завершённую партию и возвращает лучший результат.
func (p *ProgressStore) RecordGame(wave int) int {
	progress, err := p.Load()
	if err != nil {
		p.log.Warn().Err(err).Msg("could not load progress, starting fresh")
		progress = SavedProgress{}
	}
	progress.GamesPlayed++
	if wave > progress.BestWave {
		progress.BestWave = wave
	}
	if err := p.Save(progress); err != nil {
		p.log.Warn().Err(err).Msg("could not save progress")
	}
	return progress.BestWave
}

// BestWave — лучший сохранённый результат, 0 если его нет.
func (p *ProgressStore) BestWave() int {
	progress, err := p.Load()
	if err != nil {
		p.log.Warn().Err(err).Msg("could not load progress")
		return 0
	}
	return progress.BestWave
}
