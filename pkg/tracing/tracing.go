// Package tracing 基于OpenTelemetry的链路追踪
//
// 工作台的每个操作事件（提交、删除、追加版次等）都会开启一个Span，
// HTTP访问日志会带上TraceID，方便把一次请求的日志和链路对应起来。
//
// 未调用InitTracer时使用OpenTelemetry默认的空实现，StartSpan仍然可以安全调用。
//
// 使用示例：
//
//	shutdown, err := tracing.InitTracer("bookshelf", "localhost:4317")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "inventory", "Submit")
//	defer span.End()
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer 初始化全局TracerProvider，Span通过OTLP gRPC发送到collectorURL（host:port）
// 返回的shutdown必须在程序退出前调用，否则可能丢失最后一批Span
func InitTracer(serviceName, collectorURL string) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(collectorURL),
		otlptracegrpc.WithInsecure(), // 本地collector不启用TLS
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	return InitTracerWithExporter(serviceName, exporter)
}

// InitTracerWithExporter 使用指定的exporter初始化全局TracerProvider
// 测试中可以传入tracetest.InMemoryExporter
func InitTracerWithExporter(serviceName string, exporter sdktrace.SpanExporter) (func(context.Context) error, error) {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}

	return shutdown, nil
}

// StartSpan 创建Span，ctx中已有Span时新Span成为其子Span
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName)
}

// EndSpan 根据err设置Span状态并结束Span
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// ExtractTraceID 从Context提取TraceID，没有有效Span时返回空字符串
func ExtractTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// ExtractSpanID 从Context提取SpanID
func ExtractSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().SpanID().String()
}
