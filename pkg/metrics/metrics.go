// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两组：
//   - HTTP指标：请求总数、耗时分布、正在处理的请求数
//   - 库存指标：当前图书数量、图书增删改次数、版次增删次数、被拒绝的提交次数
//
// 命名规范：
//   - Counter 以 `_total` 结尾
//   - Histogram 以单位结尾（`_seconds`）
//   - Gauge 使用名词（`bookshelf_books`）
//
// 使用示例：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.RecordBookMutation("add", "applied")
//
// 未调用InitMetrics时所有记录函数都是空操作，便于单元测试和TUI模式。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initOnce 防止重复注册
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 库存业务指标

	// BooksTotal 当前图书数量（Gauge）
	BooksTotal prometheus.Gauge

	// BookMutationsTotal 图书变更次数（Counter）
	// 标签：op（add/update/delete）、result（applied/noop）
	BookMutationsTotal *prometheus.CounterVec

	// EditionChangesTotal 表单中版次的增删次数（Counter）
	// 标签：op（append/remove）、result（applied/noop）
	EditionChangesTotal *prometheus.CounterVec

	// SubmitRejectedTotal 因必填项缺失被拒绝的提交次数（Counter）
	SubmitRejectedTotal prometheus.Counter
)

// InitMetrics 初始化并注册所有指标到默认Registry，可重复调用
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 全部是内存操作，桶偏向毫秒级
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BooksTotal = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookshelf_books",
				Help: "当前图书数量",
			},
		)

		BookMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookshelf_book_mutations_total",
				Help: "图书变更次数",
			},
			[]string{"op", "result"},
		)

		EditionChangesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookshelf_edition_changes_total",
				Help: "表单版次增删次数",
			},
			[]string{"op", "result"},
		)

		SubmitRejectedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bookshelf_submit_rejected_total",
				Help: "因必填项缺失被拒绝的提交次数",
			},
		)
	})
}

// Result 标签值
const (
	ResultApplied = "applied"
	ResultNoop    = "noop"
)

// ResultOf 布尔结果 → 标签值
func ResultOf(applied bool) string {
	if applied {
		return ResultApplied
	}
	return ResultNoop
}

// RecordBookMutation 记录一次图书变更
func RecordBookMutation(op, result string) {
	if BookMutationsTotal == nil {
		return
	}
	BookMutationsTotal.With(prometheus.Labels{"op": op, "result": result}).Inc()
}

// RecordEditionChange 记录一次版次增删
func RecordEditionChange(op, result string) {
	if EditionChangesTotal == nil {
		return
	}
	EditionChangesTotal.With(prometheus.Labels{"op": op, "result": result}).Inc()
}

// RecordSubmitRejected 记录一次被拒绝的提交
func RecordSubmitRejected() {
	if SubmitRejectedTotal == nil {
		return
	}
	SubmitRejectedTotal.Inc()
}

// SetBooks 设置当前图书数量
func SetBooks(n int) {
	if BooksTotal == nil {
		return
	}
	BooksTotal.Set(float64(n))
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, seconds float64) {
	if HTTPRequestsTotal == nil {
		return
	}
	HTTPRequestsTotal.With(prometheus.Labels{"method": method, "path": path, "status": status}).Inc()
	HTTPRequestDuration.With(prometheus.Labels{"method": method, "path": path}).Observe(seconds)
}

// IncInProgress 递增正在处理的请求数
func IncInProgress() {
	if HTTPRequestsInProgress == nil {
		return
	}
	HTTPRequestsInProgress.Inc()
}

// DecInProgress 递减正在处理的请求数
func DecInProgress() {
	if HTTPRequestsInProgress == nil {
		return
	}
	HTTPRequestsInProgress.Dec()
}
