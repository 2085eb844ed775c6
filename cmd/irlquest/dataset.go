package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wekeepgrowing/irlquest-backend/internal/usecase"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/irlquest-backend/internal/usecase/interfaces"
)

// 출력 형식
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	datasetFormat     string
	datasetContext    string
	datasetDifficulty int
	datasetMaxItems   int
	datasetParallel   int
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Run the quest generator offline over a file of TODO items",
}

var datasetTagsCmd = &cobra.Command{
	Use:   "tags FILE",
	Short: "Tag each line with tags, estimated difficulty and boss flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		texts, err := readLinesFile(args[0])
		if err != nil {
			return err
		}

		records, err := newDatasetGenerator().TagTasks(cmd.Context(), texts)
		if err != nil {
			return err
		}
		return writeDataset(cmd.OutOrStdout(), datasetFormat, records)
	},
}

var datasetQuestsCmd = &cobra.Command{
	Use:   "quests FILE",
	Short: "Generate a quest for each line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		todos, err := readLinesFile(args[0])
		if err != nil {
			return err
		}

		params := dto.BulkGenerateParams{
			Todos:   todos,
			Context: datasetContext,
		}
		if cmd.Flags().Changed("difficulty") {
			d := datasetDifficulty
			params.DifficultyPreference = &d
		}

		pairs, err := newDatasetGenerator().GenerateQuests(cmd.Context(), params)
		if err != nil {
			return err
		}
		return writeDataset(cmd.OutOrStdout(), datasetFormat, pairs)
	},
}

func init() {
	datasetCmd.PersistentFlags().StringVarP(&datasetFormat, "format", "f", formatJSON, "출력 형식 (json|yaml)")
	datasetCmd.PersistentFlags().IntVar(&datasetMaxItems, "max-items", 0, "최대 항목 수 (0이면 기본값)")
	datasetQuestsCmd.Flags().StringVar(&datasetContext, "context", "", "모든 항목에 적용할 컨텍스트")
	datasetQuestsCmd.Flags().IntVar(&datasetDifficulty, "difficulty", 0, "난이도 선호 (1-5, 지정하지 않으면 추정)")
	datasetQuestsCmd.Flags().IntVar(&datasetParallel, "parallelism", 0, "동시 생성 수 (0이면 기본값)")

	datasetCmd.AddCommand(datasetTagsCmd)
	datasetCmd.AddCommand(datasetQuestsCmd)
}

// newDatasetGenerator 캐시와 기록 없이 생성 유스케이스를 만듭니다.
// 표준 출력은 데이터 전용이므로 로그를 남기지 않습니다.
func newDatasetGenerator() interfaces.GenerationUseCase {
	return usecase.NewGenerationUseCase(zap.NewNop(), usecase.GenerationConfig{
		BulkMaxItems:    datasetMaxItems,
		BulkParallelism: datasetParallel,
	}, nil, nil)
}

func readLinesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("입력 파일 열기 실패: %w", err)
	}
	defer f.Close()
	return readLines(f)
}

// readLines 빈 줄을 건너뛰고 앞뒤 공백을 제거한 줄 목록
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("입력 읽기 실패: %w", err)
	}
	return lines, nil
}

func writeDataset(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %s", format)
	}
}
