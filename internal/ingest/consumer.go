// Package ingest folds the raw trade feed into 1-second bars and hands them
// to the broker: one publish per finished second on the symbol's live
// channel, one append to the symbol's intraday list.
package ingest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/rediscache/livebar"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/config"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
)

// TradeConsumer is the consumer for the trade topic.
type TradeConsumer struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface

	liveBars livebar.Store
	listTTL  time.Duration
	msgChan  chan kafka.Message

	// currentBars holds the forming 1-second bar per symbol. Only the
	// Subscribe goroutine touches it.
	currentBars map[string]*candle.RawBar
}

// NewTradeConsumer creates a new TradeConsumer.
func NewTradeConsumer(cfg config.TradeKafkaConfig, logger logger.Interface, liveBars livebar.Store, listTTL time.Duration) *TradeConsumer {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &TradeConsumer{
		kafkaReader: kafkaReader,
		logger:      logger,
		liveBars:    liveBars,
		listTTL:     listTTL,
		msgChan:     make(chan kafka.Message),
		currentBars: make(map[string]*candle.RawBar),
	}
}

// Start starts the TradeConsumer.
func (c *TradeConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting trade consumer", logger.Field{
		Key:   "action",
		Value: "trade_consumer_start",
	})

	// Start owns msgChan: closing it on return ends Subscribe's range loop.
	defer close(c.msgChan)

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "trade_consumer_stop",
			})
			return
		default:
			msg, err := c.kafkaReader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				c.logger.ErrorContext(ctx, err, logger.Field{
					Key:   "action",
					Value: "read_message",
				})
				continue
			}

			select {
			case c.msgChan <- msg:
			case <-ctx.Done():
			}
		}
	}
}

// Stop stops the TradeConsumer.
func (c *TradeConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping trade consumer", logger.Field{
		Key:   "action",
		Value: "trade_consumer_stop",
	})
	return c.kafkaReader.Close()
}

// Subscribe subscribes to the TradeConsumer.
func (c *TradeConsumer) Subscribe(ctx context.Context) {
	c.logger.InfoContext(ctx, "subscribing to trade consumer", logger.Field{
		Key:   "action",
		Value: "trade_consumer_subscribe",
	})

	for msg := range c.msgChan {
		var trade RawTradeEvent
		if err := json.Unmarshal(msg.Value, &trade); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "unmarshal_trade",
			})
			continue
		}

		if err := c.HandleTrade(ctx, &trade); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "handle_trade",
			})
		}

		if err := c.kafkaReader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "commit_message",
			})
		}
	}
}

// HandleTrade merges one trade into its symbol's forming 1-second bar,
// publishing the previous bar when the epoch second advances. Trades with a
// non-positive price or size are discarded.
func (c *TradeConsumer) HandleTrade(ctx context.Context, trade *RawTradeEvent) error {
	if trade.Price <= 0 || trade.Size <= 0 {
		return nil
	}

	second := trade.Timestamp

	current, exists := c.currentBars[trade.Symbol]
	if !exists || current.Timestamp != second {
		if exists {
			if err := c.publishBar(ctx, trade.Symbol, *current); err != nil {
				return err
			}
		}
		c.currentBars[trade.Symbol] = &candle.RawBar{
			Timestamp: second,
			Open:      trade.Price,
			High:      trade.Price,
			Low:       trade.Price,
			Close:     trade.Price,
			Volume:    trade.Size,
		}
		return nil
	}

	if trade.Price > current.High {
		current.High = trade.Price
	}
	if trade.Price < current.Low {
		current.Low = trade.Price
	}
	current.Close = trade.Price
	current.Volume += trade.Size

	return nil
}

// CurrentBar returns the forming 1-second bar for a symbol, or nil.
func (c *TradeConsumer) CurrentBar(symbol string) *candle.RawBar {
	bar, ok := c.currentBars[symbol]
	if !ok {
		return nil
	}
	copied := *bar
	return &copied
}

func (c *TradeConsumer) publishBar(ctx context.Context, symbol string, bar candle.RawBar) error {
	if err := c.liveBars.Publish(ctx, symbol, bar); err != nil {
		return err
	}
	if err := c.liveBars.Append(ctx, symbol, bar, c.listTTL); err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "published 1-second bar", logger.Field{
		Key:   "symbol",
		Value: symbol,
	}, logger.Field{
		Key:   "timestamp",
		Value: bar.Timestamp,
	})
	return nil
}
