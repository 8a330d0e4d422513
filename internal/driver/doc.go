// Package driver runs sprig over files on disk.
//
// Назначение: собрать файлы, загрузить их в общий FileSet, параллельно
// распарсить и применить раскрытие плейсхолдеров или форматирование,
// вернуть результаты в порядке входа.
// Зависимости: internal/parser, internal/refactor, internal/format,
// internal/fix, internal/trace.
package driver
