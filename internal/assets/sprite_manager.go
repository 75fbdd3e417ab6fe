// internal/assets/sprite_manager.go
package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strconv"

	"go-wasnowl/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// ErrAssetNotFound — ни один из вариантов имени файла не найден.
var ErrAssetNotFound = errors.New("asset not found")

const (
	enemyDir  = "ennemies"
	towerDir  = "towers/Idle"
	playerDir = "player"
)

// sheetVariants — допустимые имена файлов для каждого листа анимации врага, по приоритету.
var sheetVariants = map[string][]string{
	component.SheetWalk:  {"S_Walk", "s_walk", "Walk", "walk"},
	component.SheetWalk2: {"S_Walk2", "s_walk2", "Walk2", "walk2"},
	component.SheetDeath: {"S_Death", "D_Death", "s_death", "d_death", "Death", "death"},
}

// SpriteManager загружает листы спрайтов и кэширует нарезанные кадры.
type SpriteManager struct {
	fsys    fs.FS
	decode  func(fsys fs.FS, name string) (*ebiten.Image, error)
	sheets  map[string][]*ebiten.Image
	missing map[string]bool
	log     zerolog.Logger
}

func NewSpriteManager(fsys fs.FS, log zerolog.Logger) *SpriteManager {
	return &SpriteManager{
		fsys:    fsys,
		decode:  decodeImage,
		sheets:  make(map[string][]*ebiten.Image),
		missing: make(map[string]bool),
		log:     log,
	}
}

func decodeImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	return img, err
}

// LoadAnimationFrames загружает лист анимации врага и режет его на cols x rows кадров.
// Результат (в том числе отсутствие файла) кэшируется.
func (m *SpriteManager) LoadAnimationFrames(entityID int, animation string, cols, rows int) ([]*ebiten.Image, error) {
	key := fmt.Sprintf("enemy/%d/%s/%dx%d", entityID, animation, cols, rows)
	if frames, ok := m.sheets[key]; ok {
		return frames, nil
	}
	if m.missing[key] {
		return nil, fmt.Errorf("%w: enemy %d animation %s", ErrAssetNotFound, entityID, animation)
	}

	file, err := m.resolveEnemySheet(entityID, animation)
	if err != nil {
		m.missing[key] = true
		return nil, err
	}
	frames, err := m.loadSheet(file, cols, rows)
	if err != nil {
		m.missing[key] = true
		return nil, err
	}
	m.sheets[key] = frames
	return frames, nil
}

// resolveEnemySheet находит первый существующий вариант имени файла.
func (m *SpriteManager) resolveEnemySheet(entityID int, animation string) (string, error) {
	variants, ok := sheetVariants[animation]
	if !ok {
		return "", fmt.Errorf("%w: unknown animation %q", ErrAssetNotFound, animation)
	}
	dir := path.Join(enemyDir, strconv.Itoa(entityID))
	for _, v := range variants {
		name := path.Join(dir, v+".png")
		if _, err := fs.Stat(m.fsys, name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s/{%s}", ErrAssetNotFound, dir, animation)
}

// LoadSheet загружает произвольный лист по пути внутри файловой системы ассетов.
func (m *SpriteManager) LoadSheet(name string, cols, rows int) ([]*ebiten.Image, error) {
	key := fmt.Sprintf("sheet/%s/%dx%d", name, cols, rows)
	if frames, ok := m.sheets[key]; ok {
		return frames, nil
	}
	if m.missing[key] {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	if _, err := fs.Stat(m.fsys, name); err != nil {
		m.missing[key] = true
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	frames, err := m.loadSheet(name, cols, rows)
	if err != nil {
		m.missing[key] = true
		return nil, err
	}
	m.sheets[key] = frames
	return frames, nil
}

// LoadTowerFrames загружает спрайт башни towers/Idle/<id>.png.
func (m *SpriteManager) LoadTowerFrames(spriteID, cols int) ([]*ebiten.Image, error) {
	return m.LoadSheet(path.Join(towerDir, strconv.Itoa(spriteID)+".png"), cols, 1)
}

// LoadPlayerFrames загружает спрайт игрока.
func (m *SpriteManager) LoadPlayerFrames(cols int) ([]*ebiten.Image, error) {
	return m.LoadSheet(path.Join(playerDir, "Char.png"), cols, 1)
}

// EnemyAnimation — удобная обёртка: отсутствие файла логируется и даёт nil-анимацию.
// Ходьба обязательна (ошибка), смерть и второй этап ходьбы — нет.
func (m *SpriteManager) EnemyAnimation(entityID int, animation string, cols int, frameDuration float64, loop bool) *component.Animation {
	frames, err := m.LoadAnimationFrames(entityID, animation, cols, 1)
	if err != nil {
		ev := m.log.Debug()
		if animation == component.SheetWalk {
			ev = m.log.Error()
		}
		ev.Err(err).Int("enemy_type", entityID).Str("animation", animation).Msg("enemy sprite unavailable")
		return nil
	}
	return component.NewAnimation(frames, frameDuration, loop)
}

func (m *SpriteManager) loadSheet(name string, cols, rows int) ([]*ebiten.Image, error) {
	img, err := m.decode(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite sheet %s: %w", name, err)
	}
	return SplitSheet(img, cols, rows), nil
}

// SplitSheet режет лист на кадры построчно, слева направо.
func SplitSheet(sheet *ebiten.Image, cols, rows int) []*ebiten.Image {
	if sheet == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	b := sheet.Bounds()
	fw, fh := b.Dx()/cols, b.Dy()/rows
	if fw == 0 || fh == 0 {
		return nil
	}
	frames := make([]*ebiten.Image, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rect := image.Rect(b.Min.X+c*fw, b.Min.Y+r*fh, b.Min.X+(c+1)*fw, b.Min.Y+(r+1)*fh)
			frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
		}
	}
	return frames
}
