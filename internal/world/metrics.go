package world

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики мутаций мира. Регистрируются в дефолтном регистре Prometheus
// и отдаются через /metrics REST-сервера.
var (
	blocksPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sandbox",
		Name:      "blocks_placed_total",
		Help:      "Общее число установленных блоков.",
	})
	blocksRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sandbox",
		Name:      "blocks_removed_total",
		Help:      "Общее число разрушенных блоков.",
	})
	placementsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sandbox",
		Name:      "placements_rejected_total",
		Help:      "Число установок, отклонённых из-за занятой позиции.",
	})
	removalsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sandbox",
		Name:      "removals_rejected_total",
		Help:      "Число отклонённых разрушений (бедрок или пустая позиция).",
	})
	blocksActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sandbox",
		Name:      "blocks_active",
		Help:      "Текущее количество блоков в мире.",
	})
)
