package core

import (
	"fmt"
	"strconv"
	"strings"
)

const PayloadTerminator = "~"

const BattleSituationHeader = "BS" // Battle status 比賽中的狀態
const ScoreHeader = "SC"           // Score 比分
const GameOverHeader = "GO"        // Game over 比賽結束

//ballX, ballY, leftY, leftScore, rightY, rightScore
func BattlePayload(s Snapshot) string {
	payload := fmt.Sprintf("%.2f,%.2f,%.2f,%d,%.2f,%d", s.Ball.X, s.Ball.Y,
		s.Left.Y, s.Left.Score, s.Right.Y, s.Right.Score)
	return BattleSituationHeader + payload + PayloadTerminator
}

func ScorePayload(s Snapshot) string {
	return fmt.Sprintf("%s%d,%d%s", ScoreHeader, s.Left.Score, s.Right.Score, PayloadTerminator)
}

func GameOverPayload(s Snapshot) string {
	payload := fmt.Sprintf("%s,%d,%d", PlayerName(s.Winner, s.VsComputer), s.Left.Score, s.Right.Score)
	return GameOverHeader + payload + PayloadTerminator
}

// ParseScorePayload 解析SC封包，回傳左右兩邊的分數
func ParseScorePayload(payload string) (int, int, error) {
	if !strings.HasPrefix(payload, ScoreHeader) || !strings.HasSuffix(payload, PayloadTerminator) {
		return 0, 0, fmt.Errorf("not a score payload: %q", payload)
	}
	split := strings.Split(removeHeaderTerminator(payload), ",")
	if len(split) != 2 {
		return 0, 0, fmt.Errorf("malformed score payload: %q", payload)
	}
	left, err := strconv.Atoi(split[0])
	if err != nil {
		return 0, 0, fmt.Errorf("left score: %w", err)
	}
	right, err := strconv.Atoi(split[1])
	if err != nil {
		return 0, 0, fmt.Errorf("right score: %w", err)
	}
	return left, right, nil
}

func removeHeaderTerminator(payload string) string {
	return payload[2 : len(payload)-1]
}
