package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dmitryshur/agar-io-back/internal/domain"
	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

// DotField владеет множеством съедобных точек. Все мутации и запросы
// сериализуются через канал команд: состояние трогает только горутина
// Run, поэтому внутренних блокировок нет. Регенерация до капа - единственная
// самостоятельная мутация, она живет на тикере внутри того же цикла.
type DotField struct {
	commands chan any
	done     chan struct{}

	dots  map[uuid.UUID]domain.Coordinates
	count uint32

	maxDots    uint32
	dotSize    uint32
	delta      uint32
	worldSize  domain.Coordinates
	regenEvery time.Duration

	rng *rand.Rand
}

// Команды каналу поля. Запросы с ответом несут буферизованный reply-канал,
// уведомления (deleteDots) ответа не имеют: отправитель не узнает о судьбе
// доставки, это осознанная часть контракта.
type queryViewportDots struct {
	origin   domain.Coordinates
	viewport domain.Coordinates
	reply    chan map[uuid.UUID]domain.Coordinates
}

type deleteDots struct {
	ids []uuid.UUID
}

type queryDotsCount struct {
	reply chan uint32
}

// NewDotField создает поле и сразу наполняет его maxDots точками
// со случайными координатами.
func NewDotField(cfg Config, rng *rand.Rand) *DotField {
	f := &DotField{
		commands:   make(chan any, 256),
		done:       make(chan struct{}),
		dots:       make(map[uuid.UUID]domain.Coordinates, cfg.MaxDots),
		maxDots:    cfg.MaxDots,
		dotSize:    cfg.DotSize,
		delta:      cfg.ViewportDelta,
		worldSize:  cfg.WorldSize,
		regenEvery: cfg.DotsRegenInterval,
		rng:        rng,
	}
	f.regenerate()
	return f
}

// Start запускает цикл владельца состояния.
func (f *DotField) Start() {
	go f.run()
}

// Stop останавливает цикл. Запросы после Stop зависнут - останавливать
// поле можно только после остановки всех, кто в него ходит.
func (f *DotField) Stop() {
	close(f.done)
}

func (f *DotField) run() {
	ticker := time.NewTicker(f.regenEvery)
	defer ticker.Stop()

	for {
		select {
		case <-f.done:
			return
		case cmd := <-f.commands:
			f.handle(cmd)
		case <-ticker.C:
			f.regenerate()
		}
	}
}

func (f *DotField) handle(cmd any) {
	switch c := cmd.(type) {
	case queryViewportDots:
		c.reply <- f.viewportDots(c.origin, c.viewport)
	case deleteDots:
		f.delete(c.ids)
	case queryDotsCount:
		c.reply <- f.count
	default:
		logger.Log.Warnf("DotField: unknown command %T", cmd)
	}
}

// ViewportDots возвращает точки, целиком попавшие в прямоугольник
// видимости вокруг origin (с запасом delta), в координатах,
// относительных минимальному углу прямоугольника.
func (f *DotField) ViewportDots(origin, viewport domain.Coordinates) map[uuid.UUID]domain.Coordinates {
	reply := make(chan map[uuid.UUID]domain.Coordinates, 1)
	f.commands <- queryViewportDots{origin: origin, viewport: viewport, reply: reply}
	return <-reply
}

// DeleteDots удаляет съеденные точки. Односторонняя команда без ответа;
// неизвестные id молча пропускаются.
func (f *DotField) DeleteDots(ids []uuid.UUID) {
	f.commands <- deleteDots{ids: ids}
}

// Count возвращает текущее количество точек (debug-эндпоинт и тесты).
func (f *DotField) Count() uint32 {
	reply := make(chan uint32, 1)
	f.commands <- queryDotsCount{reply: reply}
	return <-reply
}

// --- Внутренности: вызываются только из цикла run ---

func (f *DotField) viewportDots(origin, viewport domain.Coordinates) map[uuid.UUID]domain.Coordinates {
	rect := domain.ViewportRect(origin, viewport, f.delta)

	visible := make(map[uuid.UUID]domain.Coordinates)
	for id, coordinates := range f.dots {
		if rect.ContainsSquare(coordinates, f.dotSize) {
			visible[id] = rect.Translate(coordinates)
		}
	}
	return visible
}

func (f *DotField) delete(ids []uuid.UUID) {
	for _, id := range ids {
		// Проверка существования обязательна: иначе повторное удаление
		// (клиенты гоняются за одной точкой) разъехалось бы со счетчиком.
		if _, ok := f.dots[id]; ok {
			delete(f.dots, id)
			f.count--
		}
	}
}

// regenerate досыпает точек до капа. Инвариант count == len(dots)
// держится тем, что count пересчитывается из мапы после генерации.
func (f *DotField) regenerate() {
	if f.count >= f.maxDots {
		return
	}

	missing := f.maxDots - f.count
	for i := uint32(0); i < missing; i++ {
		f.dots[uuid.New()] = domain.RandomCoordinates(f.rng, f.worldSize)
	}
	f.count = uint32(len(f.dots))
}
